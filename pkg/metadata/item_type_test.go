package metadata_test

import (
	"encoding/xml"
	"testing"

	"github.com/goliatone/go-feedmeta/pkg/extension"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
)

func decodeRaw(t *testing.T, doc string) *extension.Raw {
	t.Helper()
	raw := new(extension.Raw)
	if err := xml.Unmarshal([]byte(doc), raw); err != nil {
		t.Fatalf("unmarshal raw element: %v", err)
	}
	return raw
}

func TestItemTypeRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		label string
	}{
		{"plain", "Products"},
		{"empty", ""},
		{"padded", "  Seasonal Goods  "},
		{"multiline", "Line one\nline two"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := xml.Marshal(metadata.NewItemType(tc.label))
			if err != nil {
				t.Fatalf("marshal item type: %v", err)
			}
			parsed, err := metadata.ParseItemType(decodeRaw(t, string(data)))
			if err != nil {
				t.Fatalf("parse item type: %v", err)
			}
			if parsed.Name() != tc.label {
				t.Fatalf("label changed across round trip: got %q, want %q", parsed.Name(), tc.label)
			}
		})
	}
}

func TestItemTypeMarshalShape(t *testing.T) {
	data, err := xml.Marshal(metadata.NewItemType("Products"))
	if err != nil {
		t.Fatalf("marshal item type: %v", err)
	}
	want := `<gm:item_type>Products</gm:item_type>`
	if string(data) != want {
		t.Fatalf("serialized form mismatch:\n got %s\nwant %s", data, want)
	}
}

func TestParseItemTypeIgnoresNestedMarkup(t *testing.T) {
	raw := decodeRaw(t, `<gm:item_type xmlns:gm="http://base.google.com/ns-metadata/1.0">Pro<b>du</b>cts</gm:item_type>`)
	parsed, err := metadata.ParseItemType(raw)
	if err != nil {
		t.Fatalf("parse item type: %v", err)
	}
	if parsed.Name() != "Products" {
		t.Fatalf("expected concatenated text content, got %q", parsed.Name())
	}
}

func TestParseItemTypeRequiresElement(t *testing.T) {
	if _, err := metadata.ParseItemType(nil); err == nil {
		t.Fatal("expected an error for a nil element")
	}
}
