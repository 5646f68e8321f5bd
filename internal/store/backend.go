package store

import (
	"context"
	"fmt"

	"library/internal/catalog"
)

const (
	BackendList = "list"
	BackendSet  = "set"
)

var (
	_ catalog.Repository = (*BookList)(nil)
	_ catalog.Repository = (*BookSet)(nil)
)

// New returns an empty backend of the named kind.
func New(backend string) (catalog.Repository, error) {
	switch backend {
	case BackendList, "":
		return NewBookList(), nil
	case BackendSet:
		return NewBookSet(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

type sizer interface {
	Len(ctx context.Context) int
}

// Size reports how many records repo holds, if the backend can tell.
func Size(ctx context.Context, repo catalog.Repository) (int, bool) {
	s, ok := repo.(sizer)
	if !ok {
		return 0, false
	}
	return s.Len(ctx), true
}
