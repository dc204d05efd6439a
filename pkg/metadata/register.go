package metadata

import (
	"errors"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/extension"
	"github.com/goliatone/go-feedmeta/pkg/xmlns"
)

// Register wires the item-type codecs into reg so feed parsing yields
// typed *ItemType and *Attributes values instead of Raw elements. Type
// tokens found in attribute declarations resolve through types.
func Register(reg *extension.Registry, types attrtype.Lookup) error {
	if reg == nil {
		return errors.New("metadata: extension registry is required")
	}
	if types == nil {
		return errors.New("metadata: attribute type lookup is required")
	}
	if err := reg.Register(xmlns.Metadata(itemTypeLocal), func(raw *extension.Raw) (extension.Extension, error) {
		return ParseItemType(raw)
	}); err != nil {
		return err
	}
	return reg.Register(xmlns.Metadata(attributesLocal), func(raw *extension.Raw) (extension.Extension, error) {
		return ParseAttributes(raw, types)
	})
}

// MustRegister panics when Register fails. For wiring freshly built
// registries at construction time, where a collision is a programming error.
func MustRegister(reg *extension.Registry, types attrtype.Lookup) {
	if err := Register(reg, types); err != nil {
		panic(err)
	}
}
