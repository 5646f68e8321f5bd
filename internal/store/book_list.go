package store

import (
	"context"
	"errors"
	"sync"

	"library/internal/entity"
)

// ErrBookNotFound is returned by Update when no stored book has the given name.
var ErrBookNotFound = errors.New("book not found")

// BookList keeps books in a slice, preserving insertion order.
type BookList struct {
	mu    sync.RWMutex
	books []entity.Book
}

func NewBookList() *BookList {
	return &BookList{}
}

func (s *BookList) Add(_ context.Context, book entity.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, book.Clone())
	return nil
}

// Update overwrites authors and collection of the first book named book.Name.
func (s *BookList) Update(_ context.Context, book entity.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].Name == book.Name {
			c := book.Clone()
			s.books[i].Authors = c.Authors
			s.books[i].Collection = c.Collection
			return nil
		}
	}
	return ErrBookNotFound
}

func (s *BookList) Exists(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Get returns the first book matching filter. A nil filter matches nothing.
func (s *BookList) Get(_ context.Context, filter entity.Filter) (entity.Book, bool, error) {
	if filter == nil {
		return entity.Book{}, false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if filter(b) {
			return b.Clone(), true, nil
		}
	}
	return entity.Book{}, false, nil
}

func (s *BookList) GetAll(_ context.Context) ([]entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b.Clone())
	}
	return out, nil
}

// GetList returns every book matching filter, or nil when filter is nil.
func (s *BookList) GetList(_ context.Context, filter entity.Filter) ([]entity.Book, error) {
	if filter == nil {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entity.Book{}
	for _, b := range s.books {
		if filter(b) {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

func (s *BookList) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
