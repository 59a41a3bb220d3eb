package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/componentgo/internal/config"
	"github.com/vk/componentgo/internal/ctxlog"
	"github.com/vk/componentgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	registry *registry.Registry
	model    *config.Model

	names   map[string]struct{}
	results []*Result
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// A nil loader selects DefaultLoader; no modules selects the core modules.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logW := cfg.LogWriter
	if logW == nil {
		logW = outW
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(outW)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "modules", len(modules), "symbols", reg.Len())

	if err := reg.Validate(ctx); err != nil {
		// This is a programmer error in a module, so we panic.
		panic(err)
	}

	if loader == nil {
		loader = DefaultLoader()
	}
	model := config.NewModel()
	if len(cfg.ConfigPaths) > 0 {
		loaded, err := loader.Load(ctx, cfg.ConfigPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model = loaded
	}
	logger.Debug("Configuration loaded and translated into unified model.", "declarations", len(model.Declarations))

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		registry: reg,
		model:    model,
		names:    make(map[string]struct{}),
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded declarations.
func (a *App) Model() *config.Model {
	return a.model
}

// Results returns the outcome of every declaration run so far, in order.
func (a *App) Results() []*Result {
	return a.results
}
