package docs

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-feedmeta/pkg/feed"
)

// Model is the renderer-facing projection of a parsed feed. Builders flatten
// each entry's metadata definition so templates never touch the extension
// collections directly.
type Model struct {
	// Title carries the feed's Atom title verbatim; renderers decide how to
	// handle an empty one.
	Title string `json:"title"`
	// FeedID is the Atom id of the source feed, useful for cross-linking.
	FeedID string `json:"feed_id,omitempty"`
	// Updated is the feed-level updated stamp, untouched.
	Updated string `json:"updated,omitempty"`
	// Definitions holds one section per feed entry, in document order.
	Definitions []DefinitionDoc `json:"definitions"`
}

// DefinitionDoc describes a single entry's metadata definition. ItemType and
// HasItemType together preserve the difference between an entry that declares
// no item type and one that declares an empty label.
type DefinitionDoc struct {
	EntryID     string         `json:"entry_id,omitempty"`
	EntryTitle  string         `json:"entry_title,omitempty"`
	ItemType    string         `json:"item_type"`
	HasItemType bool           `json:"has_item_type"`
	Description string         `json:"description,omitempty"`
	Attributes  []AttributeDoc `json:"attributes"`
	// Notes collects advisory findings attached by decorators, such as
	// recommended attributes the entry does not declare.
	Notes []string `json:"notes,omitempty"`
}

// AttributeDoc is one declared attribute. Type holds the canonical token or
// "" when the declaration is untyped.
type AttributeDoc struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Recommended bool   `json:"recommended,omitempty"`
}

// Decorator enriches a built model in place before rendering. Catalog-backed
// implementations fill descriptions and recommendation flags.
type Decorator interface {
	Decorate(model *Model) error
}

// DecoratorFunc adapts a plain function to the Decorator interface.
type DecoratorFunc func(model *Model) error

// Decorate implements Decorator.
func (f DecoratorFunc) Decorate(model *Model) error {
	return f(model)
}

// BuildModel projects a parsed feed into the docs model, applying decorators
// in order. Entries without extension collections fail the build; both the
// parser and NewEntry always allocate one.
func BuildModel(f *feed.Feed, decorators ...Decorator) (Model, error) {
	if f == nil {
		return Model{}, errors.New("docs: feed is required")
	}

	model := Model{
		Title:       f.Title,
		FeedID:      f.ID,
		Updated:     f.Updated,
		Definitions: make([]DefinitionDoc, 0, len(f.Entries)),
	}

	for _, entry := range f.Entries {
		if entry == nil {
			continue
		}
		def, err := entry.Definition()
		if err != nil {
			return Model{}, fmt.Errorf("docs: entry %q: %w", entry.ID, err)
		}

		doc := DefinitionDoc{
			EntryID:    entry.ID,
			EntryTitle: entry.Title,
			Attributes: []AttributeDoc{},
		}
		doc.ItemType, doc.HasItemType = def.ItemType()
		for _, id := range def.Attributes() {
			attr := AttributeDoc{Name: id.Name}
			if !id.Type.IsZero() {
				attr.Type = id.Type.Name()
			}
			doc.Attributes = append(doc.Attributes, attr)
		}
		model.Definitions = append(model.Definitions, doc)
	}

	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&model); err != nil {
			return Model{}, fmt.Errorf("docs: decorate model: %w", err)
		}
	}

	return model, nil
}
