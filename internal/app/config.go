package app

import (
	"errors"
	"io"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // hcl, yaml or toml files and directories

	LogFormat string
	LogLevel  string
	// LogWriter receives log output. Results are written to the App's outW;
	// logs go there too when LogWriter is nil.
	LogWriter io.Writer

	// ListPattern, when set, makes the CLI list matching symbols instead of running.
	ListPattern string
	// ForceStrict runs every declaration in strict mode.
	ForceStrict bool
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 && cfg.ListPattern == "" {
		return nil, errors.New("at least one configuration path is required unless listing symbols")
	}
	return &cfg, nil
}
