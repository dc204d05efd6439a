// Package xmlns is the name table for the feed wire format: the namespace
// URIs the protocol uses and the prefixes the writer binds them to. Codecs
// and the feed writer consult this package instead of carrying string
// literals of their own.
package xmlns

import "encoding/xml"

const (
	// AtomNS is the default namespace of the feed envelope.
	AtomNS = "http://www.w3.org/2005/Atom"

	// MetadataNS qualifies the item-type metadata extension elements
	// (item_type, attributes, attribute).
	MetadataNS = "http://base.google.com/ns-metadata/1.0"

	// MetadataPrefix is the prefix the writer binds to MetadataNS. Parsers
	// never depend on it; the decoder resolves whatever prefix the document
	// declares.
	MetadataPrefix = "gm"
)

// Metadata returns the resolved name of a metadata-namespace element, the
// form encoding/xml reports after prefix resolution.
func Metadata(local string) xml.Name {
	return xml.Name{Space: MetadataNS, Local: local}
}

// Prefixed returns the serialized tag for a metadata-namespace element,
// e.g. "gm:attributes". encoding/xml has no native prefix support on the
// encode path, so writers emit the prefixed local directly and declare the
// binding on the feed root.
func Prefixed(local string) string {
	return MetadataPrefix + ":" + local
}

// PrefixFor reports the prefix registered for a namespace URI. The empty
// prefix with ok=true means the URI is the document's default namespace.
func PrefixFor(space string) (string, bool) {
	switch space {
	case AtomNS, "":
		return "", true
	case MetadataNS:
		return MetadataPrefix, true
	default:
		return "", false
	}
}
