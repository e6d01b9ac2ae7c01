package main

import (
	"github.com/pantryline/pantryline/internal/config"
	"github.com/pantryline/pantryline/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	version := logger.DefaultVersion
	if cfg.Environment == logger.EnvironmentProduction {
		version = logger.ProductionVersion
	}

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig)
}
