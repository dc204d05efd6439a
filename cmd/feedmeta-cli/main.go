package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	feedmeta "github.com/goliatone/go-feedmeta"
	"github.com/goliatone/go-feedmeta/pkg/docs"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/orchestrator"
)

func main() {
	source := flag.String("source", "examples/fixtures/storefront.xml", "feed document path or URL")
	renderer := flag.String("renderer", "html", "renderer to use (html, text)")
	output := flag.String("output", "", "output file (stdout if empty)")
	fragment := flag.Bool("fragment", false, "emit the HTML fragment without the page shell")
	width := flag.Int("width", 0, "line width for the text renderer (0 uses the default)")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	var options []orchestrator.Option
	if isHTTP(*source) {
		options = append(options, orchestrator.WithLoader(
			feedmeta.NewLoader(pkgfeed.WithHTTPFallback(30*time.Second)),
		))
	}

	gen := orchestrator.New(options...)

	req := orchestrator.Request{
		Source:   src,
		Renderer: *renderer,
		RenderOptions: docs.RenderOptions{
			Fragment: *fragment,
			Width:    *width,
		},
	}

	out, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate docs: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Docs written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func parseSource(raw string) pkgfeed.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if isHTTP(path) {
		return pkgfeed.SourceFromURL(path)
	}
	return pkgfeed.SourceFromFile(path)
}

func isHTTP(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}
