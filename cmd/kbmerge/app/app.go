// Package app provides the application context and dependency management
// for the kbmerge CLI. It centralizes configuration, logging, and command
// wiring, following idiomatic patterns for CLI applications.
package app

import (
	"github.com/rs/zerolog"
)

// App represents the kbmerge application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}
