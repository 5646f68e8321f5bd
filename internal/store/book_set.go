package store

import (
	"context"
	"sync"

	"library/internal/entity"
)

// BookSet keeps books in a set keyed by record identity. Enumeration order is
// unspecified.
//
// Two records with the same name are distinct members, as in BookList; Update
// and Get act on whichever matching record the iteration reaches first.
type BookSet struct {
	mu    sync.RWMutex
	books map[*entity.Book]struct{}
}

func NewBookSet() *BookSet {
	return &BookSet{books: make(map[*entity.Book]struct{})}
}

func (s *BookSet) Add(_ context.Context, book entity.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := book.Clone()
	s.books[&c] = struct{}{}
	return nil
}

func (s *BookSet) Update(_ context.Context, book entity.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for stored := range s.books {
		if stored.Name == book.Name {
			c := book.Clone()
			stored.Authors = c.Authors
			stored.Collection = c.Collection
			return nil
		}
	}
	return ErrBookNotFound
}

func (s *BookSet) Exists(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for stored := range s.books {
		if stored.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *BookSet) Get(_ context.Context, filter entity.Filter) (entity.Book, bool, error) {
	if filter == nil {
		return entity.Book{}, false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for stored := range s.books {
		if filter(*stored) {
			return stored.Clone(), true, nil
		}
	}
	return entity.Book{}, false, nil
}

func (s *BookSet) GetAll(_ context.Context) ([]entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Book, 0, len(s.books))
	for stored := range s.books {
		out = append(out, stored.Clone())
	}
	return out, nil
}

func (s *BookSet) GetList(_ context.Context, filter entity.Filter) ([]entity.Book, error) {
	if filter == nil {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entity.Book{}
	for stored := range s.books {
		if filter(*stored) {
			out = append(out, stored.Clone())
		}
	}
	return out, nil
}

func (s *BookSet) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
