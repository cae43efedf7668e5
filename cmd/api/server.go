// cmd/api/server.go
// This file contains the serve() method which runs the HTTP server until the
// caller's context is cancelled, then drains in-flight requests.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may run after ctx is done.
const shutdownTimeout = 20 * time.Second

// serve listens on the configured host and port and blocks until ctx is
// cancelled or the listener fails. Cancellation triggers a graceful shutdown;
// the limiter's sweeper shares ctx so it stops with the server.
func (app *applicationDependencies) serve(ctx context.Context) error {
	apiServer := &http.Server{
		Addr:         net.JoinHostPort(app.config.host, strconv.Itoa(app.config.port)),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	if app.limiter != nil {
		go app.limiter.run(ctx, time.Minute, 3*time.Minute)
	}

	listenErr := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "address", apiServer.Addr, "environment", app.config.environment)
		listenErr <- apiServer.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		// The listener died before anyone asked it to stop.
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server", "address", apiServer.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-listenErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	app.logger.Info("server stopped", "address", apiServer.Addr)
	return nil
}
