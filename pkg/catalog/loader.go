package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
)

// LoadFS walks the provided filesystem and parses JSON/YAML catalog files.
// Attribute type tokens resolve through types; an unknown token fails the
// load. When fsys is nil or holds no catalog files the returned store is
// empty.
func LoadFS(fsys fs.FS, types attrtype.Lookup) (*Store, error) {
	if types == nil {
		types = attrtype.Default()
	}
	store := &Store{itemTypes: make(map[string]ItemType)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.ItemTypes {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("catalog: file %s defines an item type with an empty name", path)
			}
			if _, exists := store.itemTypes[id]; exists {
				return fmt.Errorf("catalog: duplicate item type %q (file %s)", id, path)
			}

			it, err := normalizeItemType(raw, id, path, types)
			if err != nil {
				return err
			}
			store.itemTypes[id] = it
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	ItemTypes map[string]itemTypeFile `json:"itemTypes" yaml:"itemTypes"`
}

type itemTypeFile struct {
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Attributes  []attributeFile `json:"attributes" yaml:"attributes"`
}

type attributeFile struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func normalizeItemType(raw itemTypeFile, id, source string, types attrtype.Lookup) (ItemType, error) {
	it := ItemType{
		Name:        id,
		Title:       strings.TrimSpace(raw.Title),
		Description: sanitizeDescription(raw.Description),
		Attributes:  make([]Attribute, 0, len(raw.Attributes)),
	}
	if it.Title == "" {
		it.Title = id
	}

	seen := make(map[string]struct{}, len(raw.Attributes))
	for idx, attr := range raw.Attributes {
		name := strings.TrimSpace(attr.Name)
		if name == "" {
			return ItemType{}, fmt.Errorf("catalog: item type %q (file %s) attribute %d has an empty name", id, source, idx+1)
		}
		if _, exists := seen[name]; exists {
			return ItemType{}, fmt.Errorf("catalog: item type %q (file %s) declares attribute %q twice", id, source, name)
		}
		seen[name] = struct{}{}

		out := Attribute{Name: name, Description: sanitizeDescription(attr.Description)}
		if token := strings.TrimSpace(attr.Type); token != "" {
			typ, err := types.ForName(token)
			if err != nil {
				return ItemType{}, fmt.Errorf("catalog: item type %q (file %s) attribute %q: %w", id, source, name, err)
			}
			out.Type = typ
		}
		it.Attributes = append(it.Attributes, out)
	}

	return it, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
