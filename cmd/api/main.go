// Package main is the entry point for the bookshelf API server.
// It wires together configuration, the in-memory book repository, and the HTTP router.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bookshelf/bookshelf-api/internal/data"
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config  serverConfig   // Server configuration loaded from flags
	logger  *slog.Logger   // Structured logger that writes to stdout
	models  data.Models    // Repository layer owning the book collection
	limiter *clientLimiter // Per-IP token buckets; nil when rate limiting is off
}

// main is the application entry point.
// It loads .env, parses flags, wires up dependencies, and starts the HTTP server.
func main() {
	// Create a structured logger that writes human-readable text to stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// A missing .env file is fine; flags and the real environment still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	settings, err := loadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.Error(err.Error())
		os.Exit(2)
	}

	// Bundle all shared dependencies into a single struct.
	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(),
	}
	if settings.limiter.enabled {
		appInstance.limiter = newClientLimiter(settings.limiter.rps, settings.limiter.burst)
	}

	logger.Info("book repository ready", "version", appVersion)

	// SIGINT or SIGTERM cancels ctx, which drains the server.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = appInstance.serve(ctx)
	if err != nil {
		stop()
		logger.Error(err.Error())
		os.Exit(1)
	}
}
