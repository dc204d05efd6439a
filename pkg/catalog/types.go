package catalog

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/extension"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
)

// Store keeps the parsed item types from catalog documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	itemTypes map[string]ItemType
}

// ItemType describes one well-known item type and its recommended
// attributes.
type ItemType struct {
	// Name is the wire label, e.g. "products".
	Name string
	// Title is the human heading catalogs show for the type.
	Title string
	// Description is sanitized inline HTML.
	Description string
	// Attributes lists the recommended declarations in catalog order.
	Attributes []Attribute
}

// Attribute is one recommended attribute of a catalog item type.
type Attribute struct {
	Name        string
	Type        attrtype.Type
	Description string
}

// ItemType returns the catalog entry for the supplied type name.
func (s *Store) ItemType(name string) (ItemType, bool) {
	if s == nil {
		return ItemType{}, false
	}
	it, ok := s.itemTypes[name]
	return it, ok
}

// Names returns the catalog's type names in sorted order.
func (s *Store) Names() []string {
	if s == nil || len(s.itemTypes) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.itemTypes))
	for name := range s.itemTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any item types.
func (s *Store) Empty() bool {
	return s == nil || len(s.itemTypes) == 0
}

// Definition seeds a fresh extension collection with the catalog entry's
// item type and recommended attributes and returns the projection over it.
// The collection is the caller's to attach to an entry.
func (s *Store) Definition(name string) (*metadata.Definition, *extension.Collection, error) {
	it, ok := s.ItemType(name)
	if !ok {
		return nil, nil, fmt.Errorf("catalog: unknown item type %q", name)
	}

	col := extension.NewCollection()
	def, err := metadata.NewDefinition(col)
	if err != nil {
		return nil, nil, err
	}

	def.SetItemType(it.Name)
	ids := make([]metadata.AttributeID, 0, len(it.Attributes))
	for _, attr := range it.Attributes {
		ids = append(ids, metadata.AttributeID{Name: attr.Name, Type: attr.Type})
	}
	def.SetAttributes(ids)
	return def, col, nil
}
