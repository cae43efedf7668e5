// internal/data/models.go
package data

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies so every
// handler reaches the same repository instead of package-level state.
type Models struct {
	Books *BookModel
}

// NewModels constructs a Models value backed by an empty in-memory collection.
func NewModels() Models {
	return Models{
		Books: NewBookModel(),
	}
}

// ErrRecordNotFound is returned when no record matches the requested id.
var ErrRecordNotFound = errors.New("record not found")

// Filters holds the optional list predicates extracted from the query string.
// A zero Filters matches every book.
type Filters struct {
	Name     string // Case-insensitive substring of the book name
	Reading  *bool
	Finished *bool
}

func (f Filters) matches(b *Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}

// BookModel is an ordered, mutex-guarded collection of books that lives for
// the lifetime of the process. Callers only ever receive copies.
type BookModel struct {
	mu    sync.RWMutex
	books []*Book
	now   func() time.Time
}

// NewBookModel returns an empty BookModel.
func NewBookModel() *BookModel {
	return &BookModel{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Insert stores a new book built from input. It assigns a fresh identifier,
// sets both timestamps to the current time and returns a copy of the stored
// record.
func (m *BookModel) Insert(input *BookInput) (*Book, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	book := &Book{ID: id.String()}
	book.apply(input)
	book.InsertedAt = m.now()
	book.UpdatedAt = book.InsertedAt

	m.mu.Lock()
	defer m.mu.Unlock()

	m.books = append(m.books, book)

	stored := *book
	return &stored, nil
}

// Get retrieves a copy of the book with the given id.
// Returns ErrRecordNotFound if no book with that id exists.
func (m *BookModel) Get(id string) (*Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}

	book := *m.books[i]
	return &book, nil
}

// GetAll returns the summaries of every book that satisfies filters, in
// insertion order. The result is never nil.
func (m *BookModel) GetAll(filters Filters) []*BookSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := []*BookSummary{}
	for _, b := range m.books {
		if filters.matches(b) {
			books = append(books, b.summary())
		}
	}
	return books
}

// Update replaces every mutable field of the book with the given id,
// recomputes Finished and refreshes UpdatedAt. ID and InsertedAt are kept.
// Returns ErrRecordNotFound if no matching record exists.
func (m *BookModel) Update(id string, input *BookInput) (*Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}

	book := m.books[i]
	book.apply(input)
	book.UpdatedAt = m.now()

	updated := *book
	return &updated, nil
}

// Delete removes the book with the given id, keeping the remaining books in
// their original order.
// Returns ErrRecordNotFound if no matching record exists.
func (m *BookModel) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrRecordNotFound
	}

	m.books = slices.Delete(m.books, i, i+1)
	return nil
}

// Len reports how many books are stored.
func (m *BookModel) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.books)
}

// indexOf must be called with mu held.
func (m *BookModel) indexOf(id string) int {
	return slices.IndexFunc(m.books, func(b *Book) bool { return b.ID == id })
}
