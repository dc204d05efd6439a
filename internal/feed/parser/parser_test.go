package parser

import (
	"context"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/extension"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
	"github.com/goliatone/go-feedmeta/pkg/xmlns"
)

const storefrontFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:gm="http://base.google.com/ns-metadata/1.0">
  <id>tag:example.com,2024:feed/item-types</id>
  <title>Storefront item types</title>
  <updated>2024-03-01T09:30:00Z</updated>
  <entry>
    <id>tag:example.com,2024:item-types/products</id>
    <title>Products</title>
    <updated>2024-03-01T09:30:00Z</updated>
    <link rel="alternate" href="https://example.com/item-types/products"/>
    <gm:item_type>products</gm:item_type>
    <gm:attributes>
      <gm:attribute name="condition" type="text"/>
      <gm:attribute name="price" type="floatUnit"/>
      <gm:attribute name="quantity" type="int"/>
      <gm:attribute name="payment_notes"/>
    </gm:attributes>
  </entry>
  <entry>
    <id>tag:example.com,2024:item-types/housing</id>
    <title>Housing</title>
    <updated>2024-03-01T09:30:00Z</updated>
    <gm:item_type>housing</gm:item_type>
  </entry>
</feed>
`

func parseFixture(t *testing.T, doc string, options ...pkgfeed.ParserOption) *pkgfeed.Feed {
	t.Helper()
	p := New(pkgfeed.NewParserOptions(options...))
	f, err := p.Parse(context.Background(), pkgfeed.MustNewDocument(pkgfeed.SourceFromFS("fixture.xml"), []byte(doc)))
	if err != nil {
		t.Fatalf("parse feed: %v", err)
	}
	return f
}

func TestParseCapturesEnvelopeFields(t *testing.T) {
	f := parseFixture(t, storefrontFeed)

	if f.ID != "tag:example.com,2024:feed/item-types" {
		t.Fatalf("feed id mismatch: %q", f.ID)
	}
	if f.Title != "Storefront item types" {
		t.Fatalf("feed title mismatch: %q", f.Title)
	}
	if f.Updated != "2024-03-01T09:30:00Z" {
		t.Fatalf("feed updated mismatch: %q", f.Updated)
	}
	if len(f.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(f.Entries))
	}
	if f.Entries[1].Title != "Housing" {
		t.Fatalf("second entry title mismatch: %q", f.Entries[1].Title)
	}
}

func TestParseDecodesMetadataExtensions(t *testing.T) {
	f := parseFixture(t, storefrontFeed)

	def, err := f.Entries[0].Definition()
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	name, ok := def.ItemType()
	if !ok || name != "products" {
		t.Fatalf("item type mismatch: %q (present=%v)", name, ok)
	}

	ids := def.Attributes()
	if len(ids) != 4 {
		t.Fatalf("expected 4 attribute declarations, got %d", len(ids))
	}
	if ids[1].Name != "price" || !ids[1].Type.Equal(attrtype.FloatUnit) {
		t.Fatalf("second declaration mismatch: %+v", ids[1])
	}
	if ids[3].Name != "payment_notes" || !ids[3].Type.IsZero() {
		t.Fatalf("untyped declaration mismatch: %+v", ids[3])
	}

	housing, err := f.Entries[1].Definition()
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	if name, ok := housing.ItemType(); !ok || name != "housing" {
		t.Fatalf("housing item type mismatch: %q (present=%v)", name, ok)
	}
	if got := housing.Attributes(); len(got) != 0 {
		t.Fatalf("housing must have no declarations, got %#v", got)
	}
}

func TestParseKeepsUnmodeledChildrenAsRaw(t *testing.T) {
	f := parseFixture(t, storefrontFeed)

	linkKind := extension.KindForName(xml.Name{Space: xmlns.AtomNS, Local: "link"})
	ext, ok := f.Entries[0].Extensions.FindFirst(linkKind)
	if !ok {
		t.Fatal("atom link not retained in the extension collection")
	}
	raw, ok := ext.(*extension.Raw)
	if !ok {
		t.Fatalf("expected a raw element for the link, got %T", ext)
	}
	if href, ok := raw.AttrValue("href"); !ok || href != "https://example.com/item-types/products" {
		t.Fatalf("link href mismatch: %q (present=%v)", href, ok)
	}

	// link + item_type + attributes
	if got := f.Entries[0].Extensions.Len(); got != 3 {
		t.Fatalf("expected 3 extensions on the first entry, got %d", got)
	}
}

func TestParsePropagatesMalformedAttributeErrors(t *testing.T) {
	const doc = `<feed xmlns="http://www.w3.org/2005/Atom" xmlns:gm="http://base.google.com/ns-metadata/1.0">
  <entry>
    <gm:attributes><gm:attribute type="text"/></gm:attributes>
  </entry>
</feed>`

	p := New(pkgfeed.NewParserOptions())
	_, err := p.Parse(context.Background(), pkgfeed.MustNewDocument(pkgfeed.SourceFromFS("broken.xml"), []byte(doc)))
	if err == nil {
		t.Fatal("expected a parse failure for a declaration without a name")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Fatalf("error does not point at the missing name: %v", err)
	}
}

func TestParsePropagatesUnknownTypeTokens(t *testing.T) {
	const doc = `<feed xmlns="http://www.w3.org/2005/Atom" xmlns:gm="http://base.google.com/ns-metadata/1.0">
  <entry>
    <gm:attributes><gm:attribute name="color" type="warp"/></gm:attributes>
  </entry>
</feed>`

	p := New(pkgfeed.NewParserOptions())
	_, err := p.Parse(context.Background(), pkgfeed.MustNewDocument(pkgfeed.SourceFromFS("broken.xml"), []byte(doc)))
	if !errors.Is(err, attrtype.ErrUnknownType) {
		t.Fatalf("expected an unknown type error, got %v", err)
	}
}

func TestParseRejectsForeignRoots(t *testing.T) {
	p := New(pkgfeed.NewParserOptions())
	_, err := p.Parse(context.Background(), pkgfeed.MustNewDocument(pkgfeed.SourceFromFS("rss.xml"), []byte(`<rss version="2.0"></rss>`)))
	if err == nil || !strings.Contains(err.Error(), "root") {
		t.Fatalf("expected a root element error, got %v", err)
	}
}

func TestParseRejectsTruncatedDocuments(t *testing.T) {
	p := New(pkgfeed.NewParserOptions())
	_, err := p.Parse(context.Background(), pkgfeed.MustNewDocument(pkgfeed.SourceFromFS("cut.xml"), []byte(`<feed><entry>`)))
	if err == nil {
		t.Fatal("expected an error for truncated XML")
	}
}

func TestParseHonorsCustomRegistry(t *testing.T) {
	// An empty registry leaves every extension element raw, including the
	// gm metadata pair.
	f := parseFixture(t, storefrontFeed, pkgfeed.WithRegistry(extension.NewRegistry()))

	ext, ok := f.Entries[0].Extensions.FindFirst(metadata.KindItemType)
	if !ok {
		t.Fatal("item_type element missing from the collection")
	}
	if _, isRaw := ext.(*extension.Raw); !isRaw {
		t.Fatalf("expected a raw element from an empty registry, got %T", ext)
	}
}

func TestParseStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(pkgfeed.NewParserOptions())
	if _, err := p.Parse(ctx, pkgfeed.MustNewDocument(pkgfeed.SourceFromFS("fixture.xml"), []byte(storefrontFeed))); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
