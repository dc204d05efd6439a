package orchestrator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/orchestrator"
	"github.com/goliatone/go-feedmeta/pkg/testsupport"
)

const storefrontFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:gm="http://base.google.com/ns-metadata/1.0">
  <id>urn:example:storefront</id>
  <title>Storefront metadata</title>
  <updated>2024-03-01T09:30:00Z</updated>
  <entry>
    <id>urn:example:products</id>
    <title>Products</title>
    <gm:item_type>products</gm:item_type>
    <gm:attributes>
      <gm:attribute name="condition" type="text"/>
      <gm:attribute name="price" type="floatUnit"/>
    </gm:attributes>
  </entry>
</feed>
`

func writeStorefrontFeed(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "storefront.xml")
	if err := os.WriteFile(path, []byte(storefrontFeed), 0o644); err != nil {
		t.Fatalf("write feed fixture: %v", err)
	}
	return path
}

func TestOrchestrator_Generate_Storefront(t *testing.T) {
	ctx := testsupport.Context()
	path := writeStorefrontFeed(t)

	gen := orchestrator.New()
	output, err := gen.Generate(ctx, orchestrator.Request{
		Source: pkgfeed.SourceFromFile(path),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(output)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<h1>Storefront metadata</h1>",
		`<h2 class="feedmeta-itemtype">products</h2>`,
		"<code>floatUnit</code>",
		"Physical or digital goods offered for sale.",
		`recommended attribute &quot;brand&quot; is not declared`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestOrchestrator_Generate_RejectsMissingSource(t *testing.T) {
	gen := orchestrator.New()

	_, err := gen.Generate(testsupport.Context(), orchestrator.Request{})
	if err == nil {
		t.Fatal("expected error for request without source or document")
	}
	if !strings.Contains(err.Error(), "source or document is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}
