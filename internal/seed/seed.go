package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"library/internal/entity"

	"gopkg.in/yaml.v3"
)

// Adder is the part of the catalog that seeding needs.
type Adder interface {
	AddBook(ctx context.Context, name string, authors []string, collection entity.Collection) error
}

type file struct {
	Books []record `yaml:"books"`
}

// record leaves Collection nil when the key is absent, since the zero
// Collection is Reserve.
type record struct {
	Name       string             `yaml:"name"`
	Authors    []string           `yaml:"authors"`
	Collection *entity.Collection `yaml:"collection"`
}

// Default returns the demo books shipped with the library command.
func Default() []entity.Book {
	return []entity.Book{
		{
			Name:       "The Art of Computer Programming",
			Authors:    []string{"Donald Knuth"},
			Collection: entity.Reserve,
		},
		{
			Name:       "Principia Mathematica",
			Authors:    []string{"Alfred North Whitehead", "Bertrand Russell"},
			Collection: entity.General,
		},
	}
}

// Load decodes a YAML document of the form:
//
//	books:
//	  - name: Dune
//	    authors: [Frank Herbert]
//	    collection: General
//
// Every entry must name its collection.
func Load(r io.Reader) ([]entity.Book, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	books := make([]entity.Book, 0, len(f.Books))
	for i, r := range f.Books {
		if r.Collection == nil {
			return nil, fmt.Errorf("seed book #%d %q: missing collection", i+1, r.Name)
		}
		books = append(books, entity.Book{Name: r.Name, Authors: r.Authors, Collection: *r.Collection})
	}
	return books, nil
}

func LoadFile(path string) ([]entity.Book, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Apply adds books in order and stops at the first rejected one.
func Apply(ctx context.Context, lib Adder, books []entity.Book) error {
	for i, b := range books {
		if err := lib.AddBook(ctx, b.Name, b.Authors, b.Collection); err != nil {
			return fmt.Errorf("seed book #%d %q: %w", i+1, b.Name, err)
		}
	}
	return nil
}
