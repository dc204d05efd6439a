// Package attrtype models the attribute-type vocabulary of the product
// metadata protocol: the opaque tokens (text, number, url, ...) that
// qualify item-type attributes, and the registry parsers use to resolve a
// token from a document into a canonical Type.
package attrtype

// Type is a canonical attribute-type token. The zero value means "no type
// constraint" and is what an attribute declared without a type carries.
// Type is comparable, so values can key maps and compare with ==.
type Type struct {
	name string
}

// Canonical types published by the protocol. Documents reference them by
// name in the type attribute of an attribute declaration.
var (
	Text          = Type{name: "text"}
	Number        = Type{name: "number"}
	Int           = Type{name: "int"}
	Float         = Type{name: "float"}
	NumberUnit    = Type{name: "numberUnit"}
	IntUnit       = Type{name: "intUnit"}
	FloatUnit     = Type{name: "floatUnit"}
	Boolean       = Type{name: "boolean"}
	Date          = Type{name: "date"}
	DateTime      = Type{name: "dateTime"}
	DateTimeRange = Type{name: "dateTimeRange"}
	URL           = Type{name: "url"}
	Location      = Type{name: "location"}
	Shipping      = Type{name: "shipping"}
	Group         = Type{name: "group"}
)

// New builds a Type for a custom token. Registries decide whether a custom
// token is accepted; New performs no validation beyond trimming nothing.
func New(name string) Type {
	return Type{name: name}
}

// Name returns the canonical token, empty for the zero value.
func (t Type) Name() string {
	return t.name
}

// IsZero reports whether t carries no type constraint.
func (t Type) IsZero() bool {
	return t.name == ""
}

// Equal reports token equality. go-cmp picks this up so Type can appear in
// diffed structures without AllowUnexported.
func (t Type) Equal(other Type) bool {
	return t.name == other.name
}

func (t Type) String() string {
	if t.name == "" {
		return "<untyped>"
	}
	return t.name
}
