// Package docs defines the documentation pipeline contracts: the model built
// from parsed feeds, the renderer seam that turns models into output
// documents, and the registry used to discover renderers by name.
package docs
