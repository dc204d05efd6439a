package metadata

import (
	"errors"

	"github.com/goliatone/go-feedmeta/pkg/extension"
)

// Definition is a view over a caller-owned extension collection that
// exposes the item-type pair (<gm:item_type>, <gm:attributes>) as one
// logical record. It stores no state of its own: every read walks the
// collection and every write swaps a freshly built element into it,
// keeping at most one element of each kind present. Extensions of other
// kinds in the same collection are left untouched.
type Definition struct {
	col *extension.Collection
}

// NewDefinition builds a view over col. The collection is shared, not
// copied: mutations through the definition are visible to every other
// holder of col, and vice versa.
func NewDefinition(col *extension.Collection) (*Definition, error) {
	if col == nil {
		return nil, errors.New("metadata: extension collection is required")
	}
	return &Definition{col: col}, nil
}

// ItemType returns the entry's category label. ok is false when the
// collection holds no <gm:item_type> element; an empty label with ok true
// means the element is present but empty.
func (d *Definition) ItemType() (string, bool) {
	ext, ok := d.col.FindFirst(KindItemType)
	if !ok {
		return "", false
	}
	it, ok := ext.(*ItemType)
	if !ok {
		return "", false
	}
	return it.Name(), true
}

// SetItemType replaces the collection's <gm:item_type> element with one
// holding name, inserting it when none exists. The empty string is a valid
// label; use ClearItemType to drop the element.
func (d *Definition) SetItemType(name string) {
	d.col.ReplaceOrInsert(KindItemType, NewItemType(name))
}

// ClearItemType removes any <gm:item_type> element from the collection.
func (d *Definition) ClearItemType() {
	d.col.Remove(KindItemType)
}

// Attributes returns the attribute declarations of the entry's item type
// in document order. The result is never nil; a collection without a
// <gm:attributes> element yields an empty list.
func (d *Definition) Attributes() []AttributeID {
	ext, ok := d.col.FindFirst(KindAttributes)
	if !ok {
		return []AttributeID{}
	}
	attrs, ok := ext.(*Attributes)
	if !ok {
		return []AttributeID{}
	}
	return attrs.IDs()
}

// SetAttributes replaces the collection's <gm:attributes> element with one
// holding ids. A nil or empty list removes the element instead: empty
// attribute sets are represented by absence on the wire, asymmetric with
// the item type's own absent/empty distinction.
func (d *Definition) SetAttributes(ids []AttributeID) {
	if len(ids) == 0 {
		d.col.Remove(KindAttributes)
		return
	}
	out := make([]AttributeID, len(ids))
	copy(out, ids)
	d.col.ReplaceOrInsert(KindAttributes, &Attributes{ids: out})
}
