package docs

import (
	"context"

	theme "github.com/goliatone/go-theme"
)

// Renderer converts a docs Model into a byte representation (HTML, plain
// text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model Model, options RenderOptions) ([]byte, error)
}

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the model pipeline.
type RenderOptions struct {
	// Theme carries the shared theme configuration (tokens, CSS variables,
	// partial overrides). Renderers that have no styling surface ignore it.
	Theme *theme.RendererConfig
	// Fragment asks HTML-producing renderers to emit only the document body,
	// without the page shell, so callers can embed the output in their own
	// layouts.
	Fragment bool
	// Width is the wrap column for text-producing renderers. Zero means the
	// renderer's default.
	Width int
}
