// internal/catalog/implementation.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrDuplicateISBN = errors.New("isbn already registered")
	ErrNotFound      = errors.New("book not found")
)

// service implements the Service interface with an in-memory collection.
type service struct {
	mu    sync.Mutex
	books []*Book
}

// NewService creates a new catalog service instance.
func NewService() Service {
	return &service{}
}

// Register adds a new book to the catalog. New books start out available.
func (s *service) Register(ctx context.Context, title, author, isbn string) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ISBN == isbn {
			return nil, fmt.Errorf("register %q: %w", isbn, ErrDuplicateISBN)
		}
	}

	book := &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
	}
	s.books = append(s.books, book)

	return book, nil
}

// FindAvailable looks up a book by ISBN, treating an unavailable book the
// same as a missing one.
func (s *service) FindAvailable(ctx context.Context, isbn string) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ISBN == isbn && b.Available {
			return b, nil
		}
	}
	return nil, fmt.Errorf("book %q not available: %w", isbn, ErrNotFound)
}

// Get looks up a book by ISBN regardless of availability.
func (s *service) Get(ctx context.Context, isbn string) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, fmt.Errorf("book %q: %w", isbn, ErrNotFound)
}

// SetAvailability overwrites the availability flag. Transition correctness
// is the loan ledger's responsibility, not enforced here.
func (s *service) SetAvailability(ctx context.Context, isbn string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ISBN == isbn {
			b.Available = available
			return nil
		}
	}
	return fmt.Errorf("book %q: %w", isbn, ErrNotFound)
}

// ListAll returns every registered book in insertion order.
func (s *service) ListAll(ctx context.Context) ([]*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]*Book, len(s.books))
	copy(books, s.books)
	return books, nil
}
