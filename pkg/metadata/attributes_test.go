package metadata_test

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
)

func TestAttributesRoundTrip(t *testing.T) {
	ids := []metadata.AttributeID{
		{Name: "color", Type: attrtype.Text},
		{Name: "price", Type: attrtype.Number},
		{Name: "link", Type: attrtype.URL},
		{Name: "badge"},
		{Name: "color", Type: attrtype.Text},
	}
	attrs, err := metadata.NewAttributes(ids)
	if err != nil {
		t.Fatalf("new attributes: %v", err)
	}

	data, err := xml.Marshal(attrs)
	if err != nil {
		t.Fatalf("marshal attributes: %v", err)
	}
	reparsed, err := metadata.ParseAttributes(decodeRaw(t, string(data)), attrtype.Default())
	if err != nil {
		t.Fatalf("parse attributes: %v", err)
	}

	if diff := cmp.Diff(ids, reparsed.IDs()); diff != "" {
		t.Fatalf("declarations changed across round trip (-want +got):\n%s", diff)
	}
}

func TestAttributesMarshalShape(t *testing.T) {
	attrs, err := metadata.NewAttributes([]metadata.AttributeID{
		{Name: "color", Type: attrtype.Text},
		{Name: "badge"},
	})
	if err != nil {
		t.Fatalf("new attributes: %v", err)
	}
	data, err := xml.Marshal(attrs)
	if err != nil {
		t.Fatalf("marshal attributes: %v", err)
	}
	want := `<gm:attributes><gm:attribute name="color" type="text"></gm:attribute><gm:attribute name="badge"></gm:attribute></gm:attributes>`
	if string(data) != want {
		t.Fatalf("serialized form mismatch:\n got %s\nwant %s", data, want)
	}
}

func TestParseAttributesSkipsUnknownChildren(t *testing.T) {
	raw := decodeRaw(t, `<gm:attributes xmlns:gm="http://base.google.com/ns-metadata/1.0">
	  <gm:attribute name="color" type="text"/>
	  <gm:note>editorial aside</gm:note>
	  <gm:attribute name="size"/>
	</gm:attributes>`)

	attrs, err := metadata.ParseAttributes(raw, attrtype.Default())
	if err != nil {
		t.Fatalf("parse attributes: %v", err)
	}
	want := []metadata.AttributeID{
		{Name: "color", Type: attrtype.Text},
		{Name: "size"},
	}
	if diff := cmp.Diff(want, attrs.IDs()); diff != "" {
		t.Fatalf("unknown child altered the declarations (-want +got):\n%s", diff)
	}
}

func TestParseAttributesMissingName(t *testing.T) {
	raw := decodeRaw(t, `<gm:attributes xmlns:gm="http://base.google.com/ns-metadata/1.0">
	  <gm:attribute name="color" type="text"/>
	  <gm:attribute type="text"/>
	</gm:attributes>`)

	_, err := metadata.ParseAttributes(raw, attrtype.Default())
	if err == nil {
		t.Fatal("expected a parse failure for a declaration without a name")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Fatalf("error does not point at the missing name: %v", err)
	}
}

func TestParseAttributesUnknownType(t *testing.T) {
	raw := decodeRaw(t, `<gm:attributes xmlns:gm="http://base.google.com/ns-metadata/1.0">
	  <gm:attribute name="color" type="warp"/>
	</gm:attributes>`)

	_, err := metadata.ParseAttributes(raw, attrtype.Default())
	if !errors.Is(err, attrtype.ErrUnknownType) {
		t.Fatalf("expected an unknown type error, got %v", err)
	}
}

func TestNewAttributesRequiresList(t *testing.T) {
	if _, err := metadata.NewAttributes(nil); err == nil {
		t.Fatal("expected an error for a nil declaration list")
	}

	attrs, err := metadata.NewAttributes([]metadata.AttributeID{})
	if err != nil {
		t.Fatalf("empty list must be accepted: %v", err)
	}
	if attrs.Len() != 0 {
		t.Fatalf("expected zero declarations, got %d", attrs.Len())
	}
	if attrs.IDs() == nil {
		t.Fatal("IDs must return an empty list, not nil")
	}
}

func TestNewAttributesCopiesInput(t *testing.T) {
	ids := []metadata.AttributeID{{Name: "color"}}
	attrs, err := metadata.NewAttributes(ids)
	if err != nil {
		t.Fatalf("new attributes: %v", err)
	}
	ids[0].Name = "mutated"
	if got := attrs.IDs()[0].Name; got != "color" {
		t.Fatalf("stored declarations alias the caller slice: %q", got)
	}
}

func TestAttributesEmptyListStillWritesElement(t *testing.T) {
	attrs, err := metadata.NewAttributes([]metadata.AttributeID{})
	if err != nil {
		t.Fatalf("new attributes: %v", err)
	}
	data, err := xml.Marshal(attrs)
	if err != nil {
		t.Fatalf("marshal attributes: %v", err)
	}
	want := `<gm:attributes></gm:attributes>`
	if string(data) != want {
		t.Fatalf("serialized form mismatch:\n got %s\nwant %s", data, want)
	}
}

func TestParseAttributesMissingTypeAttribute(t *testing.T) {
	raw := decodeRaw(t, `<gm:attributes xmlns:gm="http://base.google.com/ns-metadata/1.0"><gm:attribute name="x"/></gm:attributes>`)
	attrs, err := metadata.ParseAttributes(raw, attrtype.Default())
	if err != nil {
		t.Fatalf("parse attributes: %v", err)
	}
	ids := attrs.IDs()
	if len(ids) != 1 || ids[0].Name != "x" || !ids[0].Type.IsZero() {
		t.Fatalf("expected a single untyped declaration, got %#v", ids)
	}

	data, err := xml.Marshal(attrs)
	if err != nil {
		t.Fatalf("marshal attributes: %v", err)
	}
	if strings.Contains(string(data), "type=") {
		t.Fatalf("untyped declaration must not emit a type attribute: %s", data)
	}
}
