package catalog

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
)

//go:embed defaults/*.yaml
var embeddedCatalog embed.FS

// EmbeddedFS returns the bundled catalog documents. Callers may pass this
// filesystem to LoadFS, or extend it with documents of their own.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default loads the bundled catalog against the canonical type registry.
func Default() (*Store, error) {
	return LoadFS(EmbeddedFS(), attrtype.Default())
}
