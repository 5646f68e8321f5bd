package catalog

import (
	"context"

	"library/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=catalog

// Repository defines the contract for book storage backends.
// Add does not check for duplicates; keeping names unique is the caller's job.
type Repository interface {
	Add(ctx context.Context, book entity.Book) error
	Update(ctx context.Context, book entity.Book) error
	Exists(ctx context.Context, name string) (bool, error)
	Get(ctx context.Context, filter entity.Filter) (entity.Book, bool, error)
	GetAll(ctx context.Context) ([]entity.Book, error)
	GetList(ctx context.Context, filter entity.Filter) ([]entity.Book, error)
}

// Validator decides whether a candidate book may enter the catalog.
type Validator interface {
	IsValidName(name string) bool
	IsValidAuthors(authors []string) bool
}
