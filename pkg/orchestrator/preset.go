package orchestrator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-feedmeta/pkg/docs"
)

// JSONPreset applies declarative documentation overrides loaded from a JSON
// document. Presets let authors polish generated docs without touching the
// feed itself. The document shape supports a model-level title and
// per-definition patches:
//
//	{
//	  "title": "Storefront feed reference",
//	  "definitions": {
//	    "products": {
//	      "description": "Catalog of goods synced nightly.",
//	      "notes": ["Prices include VAT."],
//	      "attributes": {
//	        "price": {"description": "Display price with currency unit."}
//	      }
//	    }
//	  }
//	}
//
// Definition keys match the declared item type (case insensitively) and fall
// back to the entry ID. Unknown keys fail the decorate pass so stale presets
// surface instead of silently dropping patches.
type JSONPreset struct {
	document jsonPresetDocument
}

type jsonPresetDocument struct {
	Title       string                         `json:"title"`
	Definitions map[string]jsonDefinitionPatch `json:"definitions"`
}

type jsonDefinitionPatch struct {
	Title       string                        `json:"title"`
	Description string                        `json:"description"`
	Notes       []string                      `json:"notes"`
	Attributes  map[string]jsonAttributePatch `json:"attributes"`
}

type jsonAttributePatch struct {
	Description string `json:"description"`
	Recommended *bool  `json:"recommended"`
}

// NewJSONPreset constructs a preset decorator from raw JSON bytes.
func NewJSONPreset(data []byte) (*JSONPreset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset: document is empty")
	}
	var document jsonPresetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset: parse document: %w", err)
	}
	return &JSONPreset{document: document}, nil
}

// NewJSONPresetFromFS loads a preset document from the provided filesystem
// path.
func NewJSONPresetFromFS(fsys fs.FS, path string) (*JSONPreset, error) {
	if fsys == nil {
		return nil, errors.New("json preset: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset: read %s: %w", path, err)
	}
	return NewJSONPreset(data)
}

var _ docs.Decorator = (*JSONPreset)(nil)

// Decorate applies the declarative patches onto the supplied model.
func (p *JSONPreset) Decorate(model *docs.Model) error {
	if model == nil {
		return errors.New("json preset: model is nil")
	}

	if p.document.Title != "" {
		model.Title = p.document.Title
	}

	for key, patch := range p.document.Definitions {
		doc := findDefinition(model.Definitions, key)
		if doc == nil {
			return fmt.Errorf("json preset: definition %q not found", key)
		}
		if err := applyDefinitionPatch(doc, patch); err != nil {
			return fmt.Errorf("json preset: definition %q: %w", key, err)
		}
	}
	return nil
}

func applyDefinitionPatch(doc *docs.DefinitionDoc, patch jsonDefinitionPatch) error {
	if patch.Title != "" {
		doc.EntryTitle = patch.Title
	}
	if patch.Description != "" {
		doc.Description = patch.Description
	}
	doc.Notes = append(doc.Notes, patch.Notes...)

	for name, attrPatch := range patch.Attributes {
		attr := findAttribute(doc.Attributes, name)
		if attr == nil {
			return fmt.Errorf("attribute %q not found", name)
		}
		if attrPatch.Description != "" {
			attr.Description = attrPatch.Description
		}
		if attrPatch.Recommended != nil {
			attr.Recommended = *attrPatch.Recommended
		}
	}
	return nil
}

func findDefinition(definitions []docs.DefinitionDoc, key string) *docs.DefinitionDoc {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	for idx := range definitions {
		doc := &definitions[idx]
		if doc.HasItemType && strings.EqualFold(doc.ItemType, key) {
			return doc
		}
	}
	for idx := range definitions {
		doc := &definitions[idx]
		if doc.EntryID == key {
			return doc
		}
	}
	return nil
}

func findAttribute(attributes []docs.AttributeDoc, name string) *docs.AttributeDoc {
	for idx := range attributes {
		if attributes[idx].Name == name {
			return &attributes[idx]
		}
	}
	return nil
}
