// cmd/api/middleware.go
// This file contains HTTP middleware used to wrap the router.
// Middleware functions intercept every request before it reaches a handler.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
)

// recoverPanic turns a panic in any downstream handler into a 500 fail
// envelope. The stack is logged with the request so the cause can be traced.
func (app *applicationDependencies) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			w.Header().Set("Connection", "close")
			app.logger.Error("handler panicked",
				slog.String("request_method", r.Method),
				slog.String("request_url", r.URL.String()),
				slog.String("stack", string(debug.Stack())),
			)
			app.serverErrorResponse(w, r, fmt.Errorf("panic: %v", rec))
		}()
		next.ServeHTTP(w, r)
	})
}

// logRequest emits one structured log record per request once the response
// has been written. Disabled by -access-log=false.
func (app *applicationDependencies) logRequest(next http.Handler) http.Handler {
	if !app.config.accessLog {
		return next
	}

	return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, params handlers.LogFormatterParams) {
		app.logger.Info("request",
			"method", params.Request.Method,
			"uri", params.URL.RequestURI(),
			"status", params.StatusCode,
			"size", params.Size,
			"duration", time.Since(params.TimeStamp),
		)
	})
}

// enableCORS answers preflight requests and sets the CORS response headers for
// the configured trusted origins. "*" permits every origin.
func (app *applicationDependencies) enableCORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: app.config.cors.trustedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(next)
}

// rateLimit rejects requests from client IPs whose token bucket is empty.
// It is a no-op when the limiter is disabled.
func (app *applicationDependencies) rateLimit(next http.Handler) http.Handler {
	if app.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		if !app.limiter.allow(ip) {
			app.rateLimitExceededResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
