// Package feedmeta reads, writes, and documents product-feed metadata
// extensions: the gm:item_type and gm:attributes elements that feed entries
// carry alongside their Atom core. The root package re-exports the
// convenience surface; the pieces live under pkg/.
package feedmeta

import (
	"context"

	"github.com/goliatone/go-feedmeta/pkg/docs"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/orchestrator"
)

// RenderOptions describes per-request rendering instructions such as theme
// configuration, fragment output, or text width.
type RenderOptions = docs.RenderOptions

// Model is the renderer-facing documentation model built from a parsed feed.
type Model = docs.Model

// NewOrchestrator exposes the orchestrator constructor from the root package.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateDocs loads the feed source, builds the documentation model, and
// renders it with the named renderer (empty selects the configured default).
// It is the simplest entry point for callers that just want output bytes.
func GenerateDocs(ctx context.Context, source pkgfeed.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateDocsFromDocument renders documentation for a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateDocsFromDocument(ctx context.Context, doc pkgfeed.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}
