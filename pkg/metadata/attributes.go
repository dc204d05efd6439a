package metadata

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/extension"
	"github.com/goliatone/go-feedmeta/pkg/xmlns"
)

const (
	attributesLocal = "attributes"
	attributeLocal  = "attribute"
)

// KindAttributes identifies <gm:attributes> elements inside an extension
// collection.
var KindAttributes = extension.KindForName(xmlns.Metadata(attributesLocal))

// Attributes holds the ordered attribute declarations of one item type, as
// carried by a <gm:attributes> element. Order follows the source document
// and duplicate names are preserved verbatim. A zero-length list is valid
// and distinct from the element being absent.
type Attributes struct {
	ids []AttributeID
}

var _ extension.Extension = (*Attributes)(nil)

// NewAttributes builds an Attributes block from the given declarations. A
// nil list is rejected; an empty one is accepted. The list is copied, so
// later changes to ids do not leak into the result.
func NewAttributes(ids []AttributeID) (*Attributes, error) {
	if ids == nil {
		return nil, errors.New("metadata: attribute list is required")
	}
	out := make([]AttributeID, len(ids))
	copy(out, ids)
	return &Attributes{ids: out}, nil
}

// ParseAttributes decodes a raw <gm:attributes> element. Children named
// attribute contribute one AttributeID each, in document order; children
// with any other name are skipped so unknown siblings do not break older
// readers. An attribute child without a name, or with a type token the
// lookup does not recognize, fails the whole parse rather than dropping
// the declaration.
func ParseAttributes(raw *extension.Raw, types attrtype.Lookup) (*Attributes, error) {
	if raw == nil {
		return nil, errors.New("metadata: raw attributes element is required")
	}
	if types == nil {
		return nil, errors.New("metadata: attribute type lookup is required")
	}

	children := raw.Children()
	ids := make([]AttributeID, 0, len(children))
	for _, child := range children {
		if child.XMLName.Local != attributeLocal {
			continue
		}
		name, ok := child.AttrValue("name")
		if !ok {
			return nil, fmt.Errorf("metadata: parse attributes: declaration %d is missing its name attribute", len(ids)+1)
		}
		id := AttributeID{Name: name}
		if token, ok := child.AttrValue("type"); ok {
			typ, err := types.ForName(token)
			if err != nil {
				return nil, fmt.Errorf("metadata: parse attributes: attribute %q: %w", name, err)
			}
			id.Type = typ
		}
		ids = append(ids, id)
	}
	return &Attributes{ids: ids}, nil
}

// IDs returns a copy of the stored declarations in document order. The
// result is never nil.
func (a *Attributes) IDs() []AttributeID {
	if a == nil {
		return []AttributeID{}
	}
	out := make([]AttributeID, len(a.ids))
	copy(out, a.ids)
	return out
}

// Len reports the number of stored declarations.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.ids)
}

// ExtensionKind implements extension.Extension.
func (a *Attributes) ExtensionKind() extension.Kind {
	return KindAttributes
}

// MarshalXML writes <gm:attributes> with one <gm:attribute> child per
// stored declaration, in stored order. The type attribute is emitted only
// for declarations that carry one. A zero-length list still writes the
// container element; Definition.SetAttributes is the layer that maps empty
// attribute sets onto element absence.
func (a *Attributes) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: xmlns.Prefixed(attributesLocal)}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, id := range a.ids {
		child := xml.StartElement{
			Name: xml.Name{Local: xmlns.Prefixed(attributeLocal)},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: id.Name}},
		}
		if !id.Type.IsZero() {
			child.Attr = append(child.Attr, xml.Attr{Name: xml.Name{Local: "type"}, Value: id.Type.Name()})
		}
		if err := e.EncodeToken(child); err != nil {
			return err
		}
		if err := e.EncodeToken(child.End()); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
