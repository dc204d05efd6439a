// Package attrsearch provides deterministic attribute vocabulary data, search
// helpers, and a small net/http handler that returns JSON options for
// attribute pickers.
//
// The default handler responds to GET and HEAD requests and supports query and
// limit parameters to filter results. The backing data is derived from the
// embedded item-type catalog, one entry per recommended attribute.
package attrsearch
