package feed

import (
	"errors"

	"github.com/goliatone/go-feedmeta/pkg/extension"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
)

// Feed is the decoded envelope of a product feed. The Atom core fields are
// kept verbatim as strings; everything the parser does not model is held in
// the extension collections, so feeds round-trip without losing elements
// this library never learned about.
type Feed struct {
	ID      string
	Title   string
	Updated string

	// Extensions holds the feed-level extension elements in document order.
	Extensions *extension.Collection

	Entries []*Entry
}

// NewFeed returns an empty feed with an allocated extension collection.
func NewFeed() *Feed {
	return &Feed{Extensions: extension.NewCollection()}
}

// Entry is one item of a feed. Its Extensions collection carries the
// gm-namespaced metadata elements alongside any other extension content.
type Entry struct {
	ID      string
	Title   string
	Updated string

	// Extensions holds the entry's extension elements in document order.
	Extensions *extension.Collection
}

// NewEntry returns an empty entry with an allocated extension collection.
func NewEntry() *Entry {
	return &Entry{Extensions: extension.NewCollection()}
}

// Definition returns the item-type projection over the entry's extensions.
// Mutations through the definition write back into the entry.
func (e *Entry) Definition() (*metadata.Definition, error) {
	if e == nil || e.Extensions == nil {
		return nil, errors.New("feed: entry has no extension collection")
	}
	return metadata.NewDefinition(e.Extensions)
}
