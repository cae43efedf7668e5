// cmd/api/errors.go
// This file contains all error-response helpers for the application.
// Every error body has the shape {"status": "fail", "message": "..."}.
package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bookshelf/bookshelf-api/internal/validator"
)

// logError logs an internal error at ERROR level with the request method and URL for context.
func (app *applicationDependencies) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
	)
}

// errorResponse sends a fail envelope with the given status code and message.
// It is the low-level building block used by all the specific error helpers below.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string, extra envelope) {
	data := envelope{"status": "fail", "message": message}
	for k, v := range extra {
		data[k] = v
	}
	err := app.writeJSON(w, status, data, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs a 500-level error and sends a generic message to the client.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request", nil)
}

// notFoundResponse sends a 404 Not Found error for unknown routes.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found", nil)
}

// bookNotFoundResponse sends a 404 Not Found error for an unknown book id.
func (app *applicationDependencies) bookNotFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusNotFound, message, nil)
}

// methodNotAllowedResponse sends a 405 Method Not Allowed error.
func (app *applicationDependencies) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "the " + r.Method + " method is not supported for this resource"
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message, nil)
}

// badRequestResponse sends a 400 Bad Request error prefixed with the failed action.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, action string, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("%s. %s", action, err.Error()), nil)
}

// failedValidationResponse sends a 400 Bad Request whose message is the first
// failed rule. The full field map is included under "errors".
func (app *applicationDependencies) failedValidationResponse(w http.ResponseWriter, r *http.Request, action string, v *validator.Validator) {
	_, first, _ := v.FirstError()
	app.errorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("%s. %s", action, first), envelope{"errors": v.Errors})
}

// rateLimitExceededResponse sends a 429 Too Many Requests error.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded", nil)
}
