package text_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-feedmeta/pkg/docs"
	"github.com/goliatone/go-feedmeta/pkg/renderers/text"
	"github.com/goliatone/go-feedmeta/pkg/testsupport"
)

func sampleModel() docs.Model {
	return docs.Model{
		Title:   "Storefront metadata",
		Updated: "2024-03-01T09:30:00Z",
		Definitions: []docs.DefinitionDoc{
			{
				EntryID:     "urn:example:products",
				EntryTitle:  "Products",
				ItemType:    "Products",
				HasItemType: true,
				Description: "Physical or digital goods offered for sale.",
				Attributes: []docs.AttributeDoc{
					{Name: "price", Type: "floatUnit", Description: "Price together with its currency unit.", Recommended: true},
					{Name: "payment_notes"},
				},
				Notes: []string{`recommended attribute "brand" is not declared`},
			},
			{
				EntryID:    "urn:example:bare",
				EntryTitle: "Bare entry",
				Attributes: []docs.AttributeDoc{},
			},
		},
	}
}

func TestRendererContract(t *testing.T) {
	renderer := text.New()
	if renderer.Name() != "text" {
		t.Fatalf("name = %q, want text", renderer.Name())
	}
	if renderer.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("content type = %q", renderer.ContentType())
	}
}

func TestRenderReport(t *testing.T) {
	output, err := text.New().Render(testsupport.Context(), sampleModel(), docs.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "Storefront metadata\n" +
		"===================\n" +
		"Updated 2024-03-01T09:30:00Z\n" +
		"\n" +
		"Products\n" +
		"--------\n" +
		"Physical or digital goods offered for sale.\n" +
		"Attributes:\n" +
		"  * price (floatUnit) [recommended]\n" +
		"      Price together with its currency unit.\n" +
		"  * payment_notes (untyped)\n" +
		"Notes:\n" +
		"  - recommended attribute \"brand\" is not declared\n" +
		"\n" +
		"No item type declared (Bare entry)\n" +
		"----------------------------------\n" +
		"No attributes declared.\n"
	if got := string(output); got != want {
		t.Fatalf("report mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderWrapsAtWidth(t *testing.T) {
	output, err := text.New().Render(testsupport.Context(), sampleModel(), docs.RenderOptions{Width: 30})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(string(output), "Physical or digital goods\noffered for sale.\n") {
		t.Fatalf("description was not wrapped at 30 columns:\n%s", output)
	}
}

func TestRenderStripsDescriptionMarkup(t *testing.T) {
	model := sampleModel()
	model.Definitions[0].Attributes[0].Description = "Condition such as <b>new</b> or <b>used</b>."

	output, err := text.New().Render(testsupport.Context(), model, docs.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(string(output), "Condition such as new or used.") {
		t.Fatalf("markup should be stripped from descriptions:\n%s", output)
	}
	if strings.Contains(string(output), "<b>") {
		t.Fatalf("tags leaked into text output:\n%s", output)
	}
}

func TestRenderHonoursConfiguredWidth(t *testing.T) {
	renderer := text.New(text.WithWidth(30))

	output, err := renderer.Render(testsupport.Context(), sampleModel(), docs.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), "Physical or digital goods\noffered for sale.\n") {
		t.Fatalf("configured width was ignored:\n%s", output)
	}
}
