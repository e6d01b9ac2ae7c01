package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pantryline/pantryline/internal/bootstrap"
	"github.com/pantryline/pantryline/internal/config"
	"github.com/pantryline/pantryline/internal/database"
	"github.com/pantryline/pantryline/internal/ingredient"
	"github.com/pantryline/pantryline/internal/server"
	"github.com/pantryline/pantryline/internal/shopping"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info("Starting PantryLine", "environment", cfg.Environment, "port", cfg.Port)

	connStr := cfg.GetDBConnString()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	defer cancelMigrate()
	if err := database.Migrate(migrateCtx, connStr); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connStr,
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	eventBus, publisher, deadLetter, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	ingredientService := ingredient.NewService(repos.Ingredient, publisher, cfg.IngredientCacheSize, cfg.IngredientCacheTTL)
	shoppingService := shopping.NewService(repos.Session, ingredientService, publisher)

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, dbPool, shoppingService, ingredientService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		DeadLetter:         deadLetter,
	})
}
