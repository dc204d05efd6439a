// Package catalog loads the published vocabulary of well-known item types
// ("products", "jobs", ...) and the attributes the protocol recommends for
// each. A Store is built from YAML/JSON catalog documents (a bundled
// default set ships with the package), with attribute type tokens resolved
// against attrtype at load time and descriptions sanitized before they can
// reach HTML output. The package stays an optional overlay: the core codecs
// never consult it.
package catalog
