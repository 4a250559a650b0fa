package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/headerver/internal/domain"
	"github.com/compozy/headerver/internal/repository"
	"github.com/compozy/headerver/internal/service"
	"github.com/spf13/afero"
)

// ExtractVersionUseCase contains the logic for reading the version out of a header file.

type ExtractVersionUseCase struct {
	FsRepo    repository.FileSystemRepository
	Extractor service.VersionExtractor
}

// Execute reads the file at path once and extracts its version components.
func (uc *ExtractVersionUseCase) Execute(ctx context.Context, path string) (*domain.Components, error) {
	content, err := afero.ReadFile(uc.FsRepo, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	components, err := uc.Extractor.Extract(ctx, string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to extract version from %s: %w", path, err)
	}
	return components, nil
}
