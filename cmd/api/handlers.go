// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and the book repository.
package main

import (
	"errors"
	"net/http"

	"github.com/bookshelf/bookshelf-api/internal/data"
	"github.com/bookshelf/bookshelf-api/internal/validator"
)

// Prefixes for failure messages, one per mutating action.
const (
	actionCreate = "Failed to add book"
	actionUpdate = "Failed to update book"
	actionDelete = "Failed to delete book"
)

// createBookHandler handles POST /books.
// It validates the JSON body, stores the new book and responds 201 with the
// generated id.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.BookInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, actionCreate, err)
		return
	}

	v := validator.New()
	if data.ValidateBookInput(v, &input); !v.Valid() {
		app.failedValidationResponse(w, r, actionCreate, v)
		return
	}

	book, err := app.models.Books.Insert(&input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{
		"status":  "success",
		"message": "Book added successfully",
		"data":    envelope{"bookId": book.ID},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// Optional query parameters: name (substring, case-insensitive), reading and
// finished (1/true or 0/false). Only id, name and publisher are returned.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := data.Filters{
		Name:     app.readString(qs, "name", ""),
		Reading:  app.readBool(qs, "reading"),
		Finished: app.readBool(qs, "finished"),
	}

	books := app.models.Books.GetAll(filters)

	err := app.writeJSON(w, http.StatusOK, envelope{
		"status": "success",
		"data":   envelope{"books": books},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:id.
// Responds 404 if no book with that ID exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	const notFound = "Book not found"

	id, err := app.readIDParam(r)
	if err != nil {
		app.bookNotFoundResponse(w, r, notFound)
		return
	}

	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r, notFound)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"status": "success",
		"data":   envelope{"book": book},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books/:id.
// The body replaces every mutable field. Existence is checked before the body
// is even decoded, so any body sent to an unknown id yields 404.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	const notFound = actionUpdate + ". Id not found"

	id, err := app.readIDParam(r)
	if err != nil {
		app.bookNotFoundResponse(w, r, notFound)
		return
	}

	if _, err := app.models.Books.Get(id); err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r, notFound)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var input data.BookInput
	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, actionUpdate, err)
		return
	}

	v := validator.New()
	if data.ValidateBookInput(v, &input); !v.Valid() {
		app.failedValidationResponse(w, r, actionUpdate, v)
		return
	}

	// The book may have been deleted since the existence check.
	_, err = app.models.Books.Update(id, &input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r, notFound)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"status":  "success",
		"message": "Book updated successfully",
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books/:id.
// Responds 404 if no book with that ID exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	const notFound = actionDelete + ". Id not found"

	id, err := app.readIDParam(r)
	if err != nil {
		app.bookNotFoundResponse(w, r, notFound)
		return
	}

	err = app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r, notFound)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"status":  "success",
		"message": "Book deleted successfully",
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
