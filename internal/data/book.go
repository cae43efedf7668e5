// Package data provides the data models and the in-memory repository
// for the bookshelf service.
package data

import (
	"time"

	"github.com/bookshelf/bookshelf-api/internal/validator"
)

// Book represents a single book record held by BookModel.
type Book struct {
	ID         string    `json:"id"`         // Unique identifier assigned on insert
	Name       string    `json:"name"`       // Title of the book
	Year       int       `json:"year"`       // Year the book was published
	Author     string    `json:"author"`     // Author name
	Summary    string    `json:"summary"`    // Short synopsis
	Publisher  string    `json:"publisher"`  // Name of the publishing company
	PageCount  int       `json:"pageCount"`  // Total number of pages
	ReadPage   int       `json:"readPage"`   // Last page read, never above PageCount
	Finished   bool      `json:"finished"`   // Derived: ReadPage == PageCount
	Reading    bool      `json:"reading"`    // Whether the book is currently being read
	InsertedAt time.Time `json:"insertedAt"` // Timestamp when the record was created
	UpdatedAt  time.Time `json:"updatedAt"`  // Timestamp when the record was last modified
}

// BookSummary is the reduced view of a Book returned by list requests.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// BookInput holds the fields a client supplies when creating or replacing a
// book. Reading defaults to false when omitted.
type BookInput struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

// ValidateBookInput records every rule input breaks. Checks run in a fixed
// order so the first failure is stable: name, page counts, then readPage
// against pageCount.
func ValidateBookInput(v *validator.Validator, input *BookInput) {
	v.Check(input.Name != "", "name", "Please provide the book name")
	v.Check(input.PageCount >= 0, "pageCount", "pageCount must not be negative")
	v.Check(input.ReadPage >= 0, "readPage", "readPage must not be negative")
	v.Check(input.ReadPage <= input.PageCount, "readPage", "readPage must not be greater than pageCount")
}

// apply copies every mutable field from input onto b and recomputes Finished.
func (b *Book) apply(input *BookInput) {
	b.Name = input.Name
	b.Year = input.Year
	b.Author = input.Author
	b.Summary = input.Summary
	b.Publisher = input.Publisher
	b.PageCount = input.PageCount
	b.ReadPage = input.ReadPage
	b.Reading = input.Reading
	b.Finished = b.PageCount == b.ReadPage
}

func (b *Book) summary() *BookSummary {
	return &BookSummary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}
