package feed_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
)

func TestMarshalEntryFragment(t *testing.T) {
	entry := feed.NewEntry()
	entry.ID = "urn:example:products"
	entry.Title = "Products"

	def, err := entry.Definition()
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	def.SetItemType("Products")
	def.SetAttributes([]metadata.AttributeID{
		{Name: "price", Type: attrtype.New("floatUnit")},
		{Name: "payment_notes"},
	})

	out, err := feed.MarshalEntry(entry)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}

	got := string(out)
	if strings.Contains(got, "<?xml") {
		t.Fatalf("fragment should not carry an XML declaration:\n%s", got)
	}
	if strings.Contains(got, "xmlns") {
		t.Fatalf("fragment should not declare namespaces:\n%s", got)
	}
	for _, want := range []string{
		"<entry>",
		"<id>urn:example:products</id>",
		"<title>Products</title>",
		"<gm:item_type>Products</gm:item_type>",
		`<gm:attribute name="price" type="floatUnit">`,
		`<gm:attribute name="payment_notes">`,
		"</entry>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("fragment missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("fragment should end with a newline:\n%q", got)
	}
}

func TestMarshalEntryRequiresEntry(t *testing.T) {
	if _, err := feed.MarshalEntry(nil); err == nil {
		t.Fatal("expected error for nil entry")
	}
}
