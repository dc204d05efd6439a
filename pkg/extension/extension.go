// Package extension is the framework feed entries use to carry
// namespace-qualified extension elements. Every extension is identified by
// a structural Kind; a Collection keeps an entry's extensions in document
// order and supports the typed lookup/replace operations projections build
// on. Elements without a registered parser survive as Raw trees so unknown
// extensions round-trip instead of being dropped.
package extension

import "encoding/xml"

// Kind identifies the structural kind of an extension element. Kinds are
// derived from the resolved element name so elements from unrelated
// namespaces can never collide.
type Kind string

// KindForName derives the Kind of a resolved element name.
func KindForName(name xml.Name) Kind {
	return Kind(name.Space + " " + name.Local)
}

// Extension is one namespace-qualified element attached to a feed entry.
// Implementations own their serialization; parsing is dispatched through a
// Registry.
type Extension interface {
	// ExtensionKind reports the structural kind used for Collection lookups.
	ExtensionKind() Kind

	xml.Marshaler
}
