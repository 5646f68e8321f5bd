package catalog

import "errors"

var (
	// ErrInvalidBook is matched by every *ValidationError.
	ErrInvalidBook = errors.New("invalid book")
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("book not found")
)

// ValidationError is returned by AddBook when the name or authors are rejected.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidBook }

// NotFoundError is returned by lookups on a name the catalog does not hold.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string { return e.Name + " - Book Not Found!" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
