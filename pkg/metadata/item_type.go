package metadata

import (
	"encoding/xml"
	"errors"

	"github.com/goliatone/go-feedmeta/pkg/extension"
	"github.com/goliatone/go-feedmeta/pkg/xmlns"
)

const itemTypeLocal = "item_type"

// KindItemType identifies <gm:item_type> elements inside an extension
// collection.
var KindItemType = extension.KindForName(xmlns.Metadata(itemTypeLocal))

// ItemType carries the category label of a feed entry, e.g. "Products" or
// "Jobs". The label is stored verbatim and never validated; the empty
// string is a valid label, distinct from the element being absent.
type ItemType struct {
	name string
}

var _ extension.Extension = (*ItemType)(nil)

// NewItemType builds an ItemType holding the given label.
func NewItemType(name string) *ItemType {
	return &ItemType{name: name}
}

// ParseItemType decodes a raw <gm:item_type> element. The label is the
// concatenated text content of the element, with no trimming or whitespace
// normalization.
func ParseItemType(raw *extension.Raw) (*ItemType, error) {
	if raw == nil {
		return nil, errors.New("metadata: raw item type element is required")
	}
	return &ItemType{name: raw.Text()}, nil
}

// Name returns the stored label.
func (t *ItemType) Name() string {
	return t.name
}

// ExtensionKind implements extension.Extension.
func (t *ItemType) ExtensionKind() extension.Kind {
	return KindItemType
}

// MarshalXML writes the element as <gm:item_type>label</gm:item_type>.
func (t *ItemType) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: xmlns.Prefixed(itemTypeLocal)}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(t.name)); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}
