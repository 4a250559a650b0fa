package config

import (
	"fmt"
	"strings"

	"github.com/compozy/headerver/internal/service"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	MacroPrefix string `mapstructure:"macro_prefix"`
	LogLevel    string `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		MacroPrefix: service.DefaultMacroPrefix,
		LogLevel:    "info",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MacroPrefix == "" {
		return fmt.Errorf("macro_prefix cannot be empty")
	}
	if len(c.MacroPrefix) > service.MaxMacroPrefixLength {
		return fmt.Errorf("macro_prefix too long: maximum %d characters", service.MaxMacroPrefixLength)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(strings.TrimSpace(c.LogLevel))
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".headerver")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// Configure environment variables
	v.SetEnvPrefix("HEADERVER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("macro_prefix", "HEADERVER_MACRO_PREFIX"); err != nil {
		return nil, fmt.Errorf("failed to bind macro_prefix env: %w", err)
	}
	if err := v.BindEnv("log_level", "HEADERVER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log_level env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("macro_prefix", defaults.MacroPrefix)
	v.SetDefault("log_level", defaults.LogLevel)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
