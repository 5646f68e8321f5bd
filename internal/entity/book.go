package entity

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Collection is the shelf a book belongs to.
type Collection int

const (
	Reserve Collection = iota
	General
)

var collectionNames = map[Collection]string{
	Reserve: "Reserve",
	General: "General",
}

func (c Collection) String() string {
	if name, ok := collectionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Collection(%d)", int(c))
}

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	_, ok := collectionNames[c]
	return ok
}

// ParseCollection maps a collection name to its value, ignoring case.
func ParseCollection(s string) (Collection, error) {
	for c, name := range collectionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown collection %q", s)
}

func (c Collection) MarshalYAML() (interface{}, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown collection %d", int(c))
	}
	return c.String(), nil
}

func (c *Collection) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCollection(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Book is a single catalog entry. Name is the key.
type Book struct {
	Name       string     `yaml:"name"`
	Authors    []string   `yaml:"authors"`
	Collection Collection `yaml:"collection"`
}

// Clone returns a copy that shares no memory with b.
func (b Book) Clone() Book {
	if b.Authors != nil {
		authors := make([]string, len(b.Authors))
		copy(authors, b.Authors)
		b.Authors = authors
	}
	return b
}

// Filter selects books in repository queries.
type Filter func(Book) bool

// ByName matches the book whose name equals name exactly.
func ByName(name string) Filter {
	return func(b Book) bool { return b.Name == name }
}

// InCollection matches books shelved in c.
func InCollection(c Collection) Filter {
	return func(b Book) bool { return b.Collection == c }
}
