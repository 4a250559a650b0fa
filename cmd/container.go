package cmd

import (
	"io"
	"os"

	"github.com/compozy/headerver/internal/config"
	"github.com/compozy/headerver/internal/logger"
	"github.com/compozy/headerver/internal/repository"
	"github.com/compozy/headerver/internal/service"
	"github.com/compozy/headerver/internal/usecase"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config
	log *zap.Logger

	fsRepo    repository.FileSystemRepository
	extractor service.VersionExtractor
}

// newContainer creates a new container with all the dependencies.
// A broken configuration falls back to defaults so extraction still runs.
func newContainer(load func() (*config.Config, error), stderr io.Writer) (*container, error) {
	cfg, cfgErr := load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	level, err := cfg.Level()
	if err != nil {
		level = zapcore.InfoLevel
	}
	log := logger.New(stderr, level)
	if cfgErr != nil {
		log.Warn("ignoring invalid configuration, using defaults", zap.Error(cfgErr))
	}

	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	extractor, err := service.NewVersionExtractor(cfg.MacroPrefix)
	if err != nil {
		return nil, err
	}

	return &container{
		cfg:       cfg,
		log:       log,
		fsRepo:    fsRepo,
		extractor: extractor,
	}, nil
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer(config.LoadConfig, os.Stderr)
	if err != nil {
		return err
	}
	uc := &usecase.ExtractVersionUseCase{
		FsRepo:    c.fsRepo,
		Extractor: c.extractor,
	}
	rootCmd = NewRootCmd(uc, c.log)
	return nil
}
