package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	feedmeta "github.com/goliatone/go-feedmeta"
	"github.com/goliatone/go-feedmeta/pkg/docs"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/orchestrator"
)

const snapshotRendererName = "docs-model-snapshot"

type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, model docs.Model, _ docs.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		feedPath   = flag.String("feed", "pkg/docs/testdata/storefront.xml", "feed fixture path")
		outputPath = flag.String("output", "pkg/docs/testdata/storefront_model.golden.json", "output path for the serialized docs model")
	)
	flag.Parse()

	ctx := context.Background()

	registry := docs.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	// The golden captures the bare model builder output, so the embedded
	// catalog decorator stays off.
	orch := orchestrator.New(
		orchestrator.WithLoader(feedmeta.NewLoader()),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
		orchestrator.WithCatalogFS(nil),
	)

	_, err := orch.Generate(ctx, orchestrator.Request{
		Source:   pkgfeed.SourceFromFile(*feedPath),
		Renderer: snapshotRendererName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot docs model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote docs model snapshot to %s\n", *outputPath)
}
