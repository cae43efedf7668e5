// cmd/api/config.go
// This file contains the startup configuration and the flag parsing that
// fills it. Every flag defaults to an environment variable so the service
// can also be configured through a .env file.
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// serverConfig holds all the values that can be tweaked at startup via command-line flags.
type serverConfig struct {
	host        string // Interface the HTTP server binds to
	port        int    // TCP port the HTTP server listens on (default 9000)
	environment string // Runtime environment: development, staging, or production
	accessLog   bool   // Log one line per handled request
	limiter     struct {
		rps     float64 // Tokens added per second for each client IP
		burst   int     // Bucket size for each client IP
		enabled bool
	}
	cors struct {
		trustedOrigins []string // "*" permits every origin
	}
}

// loadConfig parses args (without the program name) into a serverConfig.
func loadConfig(args []string) (serverConfig, error) {
	var settings serverConfig

	fs := flag.NewFlagSet("bookshelf-api", flag.ContinueOnError)

	fs.StringVar(&settings.host, "host", envString("BOOKSHELF_HOST", "localhost"), "Server host")
	fs.IntVar(&settings.port, "port", envInt("BOOKSHELF_PORT", 9000), "Server port")
	fs.StringVar(&settings.environment, "env", envString("BOOKSHELF_ENV", "development"), "Environment(development|staging|production)")
	fs.BoolVar(&settings.accessLog, "access-log", envBool("BOOKSHELF_ACCESS_LOG", true), "Log every request")

	fs.Float64Var(&settings.limiter.rps, "limiter-rps", envFloat("BOOKSHELF_LIMITER_RPS", 50), "Rate limiter maximum requests per second")
	fs.IntVar(&settings.limiter.burst, "limiter-burst", envInt("BOOKSHELF_LIMITER_BURST", 100), "Rate limiter maximum burst")
	fs.BoolVar(&settings.limiter.enabled, "limiter-enabled", envBool("BOOKSHELF_LIMITER_ENABLED", true), "Enable rate limiter")

	settings.cors.trustedOrigins = strings.Fields(envString("BOOKSHELF_CORS_TRUSTED_ORIGINS", "*"))
	fs.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		settings.cors.trustedOrigins = strings.Fields(val)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return serverConfig{}, err
	}

	return settings, nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return i
}

func envFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}
