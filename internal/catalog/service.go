package catalog

import (
	"context"
	"fmt"

	"library/internal/entity"

	"github.com/rs/zerolog"
)

// Library is the catalog facade: it validates books and upserts them by name.
type Library struct {
	repo      Repository
	validator Validator
	log       zerolog.Logger
}

type Option func(*Library)

// WithLogger sets the logger used for write events.
func WithLogger(l zerolog.Logger) Option {
	return func(lib *Library) { lib.log = l }
}

// NewLibrary creates a catalog over repo. A nil validator falls back to NewValidator.
func NewLibrary(repo Repository, v Validator, opts ...Option) *Library {
	if v == nil {
		v = NewValidator()
	}
	lib := &Library{repo: repo, validator: v, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// AddBook inserts a new book, or overwrites the authors and collection of the
// book already stored under name.
func (l *Library) AddBook(ctx context.Context, name string, authors []string, collection entity.Collection) error {
	var invalid []string
	if !l.validator.IsValidName(name) {
		invalid = append(invalid, "name")
	}
	if !l.validator.IsValidAuthors(authors) {
		invalid = append(invalid, "authors")
	}
	if len(invalid) > 0 {
		l.log.Warn().Str("name", name).Strs("fields", invalid).Msg("book rejected")
		return &ValidationError{Message: "Invalid book", Fields: invalid}
	}

	book := entity.Book{Name: name, Authors: authors, Collection: collection}.Clone()

	exists, err := l.repo.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("check book %q: %w", name, err)
	}

	if exists {
		if err := l.repo.Update(ctx, book); err != nil {
			return fmt.Errorf("update book %q: %w", name, err)
		}
		l.log.Debug().Str("name", name).Stringer("collection", collection).Msg("book updated")
		return nil
	}

	if err := l.repo.Add(ctx, book); err != nil {
		return fmt.Errorf("add book %q: %w", name, err)
	}
	l.log.Debug().Str("name", name).Stringer("collection", collection).Msg("book added")
	return nil
}

// GetBookNames returns every name in backend order.
func (l *Library) GetBookNames(ctx context.Context) ([]string, error) {
	books, err := l.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return names(books), nil
}

// GetBookNamesIn returns the names of books shelved in collection.
func (l *Library) GetBookNamesIn(ctx context.Context, collection entity.Collection) ([]string, error) {
	books, err := l.repo.GetList(ctx, entity.InCollection(collection))
	if err != nil {
		return nil, fmt.Errorf("list %s books: %w", collection, err)
	}
	return names(books), nil
}

func (l *Library) GetBookAuthors(ctx context.Context, name string) ([]string, error) {
	book, err := l.find(ctx, name)
	if err != nil {
		return nil, err
	}
	return book.Authors, nil
}

func (l *Library) GetBookCollection(ctx context.Context, name string) (entity.Collection, error) {
	book, err := l.find(ctx, name)
	if err != nil {
		return 0, err
	}
	return book.Collection, nil
}

func (l *Library) find(ctx context.Context, name string) (entity.Book, error) {
	book, ok, err := l.repo.Get(ctx, entity.ByName(name))
	if err != nil {
		return entity.Book{}, fmt.Errorf("get book %q: %w", name, err)
	}
	if !ok {
		return entity.Book{}, &NotFoundError{Name: name}
	}
	return book, nil
}

func names(books []entity.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Name)
	}
	return out
}
