// Package metadata implements the gm-namespaced extension elements that
// describe catalog item types inside a product feed: <gm:item_type> names
// the category a feed entry belongs to and <gm:attributes> declares the
// typed fields items of that category may carry. Both codecs plug into the
// generic framework in pkg/extension, and Definition projects the pair onto
// a single logical record over a caller-owned extension collection.
package metadata
