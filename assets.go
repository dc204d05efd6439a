package feedmeta

import (
	"io/fs"

	"github.com/goliatone/go-feedmeta/pkg/renderers/html"
)

// AssetsFS exposes the default stylesheet shipped with the HTML renderer so
// applications can serve it next to generated pages.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(feedmeta.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html.AssetsFS()
}
