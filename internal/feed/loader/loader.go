package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
)

// Loader implements pkgfeed.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level feedmeta package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgfeed.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgfeed.LoaderOptions) pkgfeed.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkgfeed.Source) (pkgfeed.Document, error) {
	if src == nil {
		return pkgfeed.Document{}, errors.New("feed loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgfeed.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgfeed.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgfeed.SourceKindURL:
		if !l.allowHTTP {
			return pkgfeed.Document{}, errors.New("feed loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("feed loader: unsupported source kind")
	}
	if err != nil {
		return pkgfeed.Document{}, err
	}

	return pkgfeed.NewDocument(src, data)
}
