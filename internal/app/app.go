package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mfgkit/proligentgo/internal/model"
	"github.com/mfgkit/proligentgo/internal/timefmt"
	"github.com/mfgkit/proligentgo/internal/xsd"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: one App generates warehouse XML for one scenario path.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	env    *model.Env
	schema *xsd.Schema
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, a build environment
// homed in the configured timezone, and the schema to validate against.
func NewApp(outW io.Writer, config *Config) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	loc, err := timefmt.LoadZone(config.Timezone)
	if err != nil {
		return nil, err
	}

	env := model.DefaultEnv()
	env.Location = loc
	if config.OutputDir != "" {
		env.DestinationDir = config.OutputDir
	}
	logger.Debug("Build environment prepared.",
		"timezone", loc.String(), "destination", env.DestinationDir)

	var schema *xsd.Schema
	if config.Validate {
		schema, err = xsd.Load(config.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("load schema: %w", err)
		}
		logger.Debug("Schema loaded.", "path", config.SchemaPath)
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		env:    env,
		schema: schema,
	}, nil
}

// Env returns the application's build environment. This is primarily for
// testing.
func (a *App) Env() *model.Env {
	return a.env
}
