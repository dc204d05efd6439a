package metadata

import "github.com/goliatone/go-feedmeta/pkg/attrtype"

// AttributeID declares one field an item of a given type may carry. Name is
// the attribute token from the feed document and Type its declared value
// type; Type is the zero value when the declaration carries no type
// constraint. AttributeID is comparable, so two values are equal exactly
// when both fields match.
type AttributeID struct {
	Name string
	Type attrtype.Type
}

// String renders the declaration the way documentation output shows it:
// the bare name, or "name (type)" when a type constraint is present.
func (id AttributeID) String() string {
	if id.Type.IsZero() {
		return id.Name
	}
	return id.Name + " (" + id.Type.Name() + ")"
}
