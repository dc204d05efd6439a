package orchestrator_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-feedmeta/pkg/docs"
	"github.com/goliatone/go-feedmeta/pkg/orchestrator"
	"github.com/goliatone/go-feedmeta/pkg/testsupport"
	"github.com/google/go-cmp/cmp"
)

func presetModel() docs.Model {
	return docs.Model{
		Title: "Storefront metadata",
		Definitions: []docs.DefinitionDoc{
			{
				EntryID:     "urn:example:products",
				EntryTitle:  "Products",
				ItemType:    "Products",
				HasItemType: true,
				Attributes: []docs.AttributeDoc{
					{Name: "price", Type: "floatUnit"},
					{Name: "condition", Type: "text"},
				},
			},
			{
				EntryID:    "urn:example:misc",
				EntryTitle: "Misc entry",
				Attributes: []docs.AttributeDoc{},
			},
		},
	}
}

func mustPreset(t *testing.T, payload string) *orchestrator.JSONPreset {
	t.Helper()

	preset, err := orchestrator.NewJSONPreset([]byte(payload))
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}
	return preset
}

func TestJSONPreset_AppliesOverrides(t *testing.T) {
	preset := mustPreset(t, `{
		"title": "Storefront feed reference",
		"definitions": {
			"products": {
				"description": "Catalog of goods synced nightly.",
				"notes": ["Prices include VAT."],
				"attributes": {
					"price": {"description": "Display price with currency unit.", "recommended": true}
				}
			},
			"urn:example:misc": {
				"title": "Miscellaneous"
			}
		}
	}`)

	model := presetModel()
	if err := preset.Decorate(&model); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	if model.Title != "Storefront feed reference" {
		t.Fatalf("title override missing: %q", model.Title)
	}

	products := model.Definitions[0]
	if products.Description != "Catalog of goods synced nightly." {
		t.Fatalf("description override missing: %q", products.Description)
	}
	if diff := cmp.Diff([]string{"Prices include VAT."}, products.Notes); diff != "" {
		t.Fatalf("notes mismatch (-want +got):\n%s", diff)
	}

	price := products.Attributes[0]
	if price.Description != "Display price with currency unit." || !price.Recommended {
		t.Fatalf("attribute patch missing: %+v", price)
	}
	if got := products.Attributes[1]; got.Description != "" || got.Recommended {
		t.Fatalf("unpatched attribute changed: %+v", got)
	}

	if got := model.Definitions[1].EntryTitle; got != "Miscellaneous" {
		t.Fatalf("entry ID match failed: %q", got)
	}
}

func TestJSONPreset_UnknownDefinitionFails(t *testing.T) {
	preset := mustPreset(t, `{"definitions": {"vehicles": {"description": "x"}}}`)

	model := presetModel()
	err := preset.Decorate(&model)
	if err == nil || !strings.Contains(err.Error(), `definition "vehicles" not found`) {
		t.Fatalf("expected unknown definition error, got %v", err)
	}
}

func TestJSONPreset_UnknownAttributeFails(t *testing.T) {
	preset := mustPreset(t, `{"definitions": {"products": {"attributes": {"sku": {"description": "x"}}}}}`)

	model := presetModel()
	err := preset.Decorate(&model)
	if err == nil || !strings.Contains(err.Error(), `attribute "sku" not found`) {
		t.Fatalf("expected unknown attribute error, got %v", err)
	}
}

func TestJSONPreset_RejectsEmptyDocuments(t *testing.T) {
	if _, err := orchestrator.NewJSONPreset([]byte("  \n")); err == nil {
		t.Fatal("expected error for empty document")
	}
	if _, err := orchestrator.NewJSONPreset([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestOrchestrator_AppliesPresetFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"presets/storefront.json": &fstest.MapFile{
			Data: []byte(`{"title": "Storefront feed reference"}`),
		},
	}

	renderer := &captureRenderer{}
	orch := newCaptureOrchestrator(renderer,
		orchestrator.WithPresetFS(fsys, "presets/storefront.json"),
	)

	doc := storefrontDocument()
	if _, err := orch.Generate(testsupport.Context(), orchestrator.Request{Document: &doc}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.model.Title != "Storefront feed reference" {
		t.Fatalf("preset not applied: %q", renderer.model.Title)
	}
}

func TestOrchestrator_BadPresetFailsGenerate(t *testing.T) {
	renderer := &captureRenderer{}
	orch := newCaptureOrchestrator(renderer,
		orchestrator.WithPresetFS(fstest.MapFS{}, "missing.json"),
	)

	doc := storefrontDocument()
	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{Document: &doc})
	if err == nil || !strings.Contains(err.Error(), "load preset") {
		t.Fatalf("expected preset load error, got %v", err)
	}
}
