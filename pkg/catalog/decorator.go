package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-feedmeta/pkg/docs"
)

// Decorator enriches docs models with catalog knowledge: descriptions for
// known item types and their attributes, recommendation flags, and notes
// about recommended attributes an entry does not declare.
type Decorator struct {
	store *Store
}

// NewDecorator wraps a catalog store for use in the docs pipeline.
func NewDecorator(store *Store) (*Decorator, error) {
	if store == nil {
		return nil, errors.New("catalog: store is required")
	}
	return &Decorator{store: store}, nil
}

var _ docs.Decorator = (*Decorator)(nil)

// Decorate annotates every definition in the model in place. Entries whose
// item type is unknown to the catalog receive a note and are otherwise left
// alone.
func (d *Decorator) Decorate(model *docs.Model) error {
	if model == nil {
		return errors.New("catalog: model is required")
	}
	for i := range model.Definitions {
		d.decorateDefinition(&model.Definitions[i])
	}
	return nil
}

func (d *Decorator) decorateDefinition(doc *docs.DefinitionDoc) {
	if !doc.HasItemType {
		return
	}

	// Feed labels are usually capitalized while catalog names are lowercase
	// wire labels, so fall back to a lowered lookup.
	itemType, ok := d.store.ItemType(doc.ItemType)
	if !ok {
		itemType, ok = d.store.ItemType(strings.ToLower(doc.ItemType))
	}
	if !ok {
		doc.Notes = append(doc.Notes, fmt.Sprintf("item type %q is not in the catalog", doc.ItemType))
		return
	}

	if doc.Description == "" {
		doc.Description = itemType.Description
	}

	recommended := make(map[string]Attribute, len(itemType.Attributes))
	for _, attr := range itemType.Attributes {
		recommended[attr.Name] = attr
	}

	declared := make(map[string]struct{}, len(doc.Attributes))
	for i := range doc.Attributes {
		attr := &doc.Attributes[i]
		declared[attr.Name] = struct{}{}

		spec, ok := recommended[attr.Name]
		if !ok {
			continue
		}
		attr.Recommended = true
		if attr.Description == "" {
			attr.Description = spec.Description
		}
		if attr.Type != "" && !spec.Type.IsZero() && attr.Type != spec.Type.Name() {
			doc.Notes = append(doc.Notes, fmt.Sprintf(
				"attribute %q is declared as %s but the catalog recommends %s",
				attr.Name, attr.Type, spec.Type.Name()))
		}
	}

	// Catalog order keeps missing-attribute notes stable.
	for _, spec := range itemType.Attributes {
		if _, ok := declared[spec.Name]; !ok {
			doc.Notes = append(doc.Notes, fmt.Sprintf("recommended attribute %q is not declared", spec.Name))
		}
	}
}
