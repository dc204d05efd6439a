// Package export turns item-type definitions into OpenAPI schema objects so
// downstream tooling can validate feed payloads against the declared
// attributes.
package export

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
)

// TypeExtension is the vendor extension carrying the original attribute type
// token on every exported property schema.
const TypeExtension = "x-feedmeta-type"

// Schema builds an object schema describing items that follow the
// definition: one property per declared attribute, titled with the item type
// label when one is declared. Duplicate attribute names are legal on the
// wire; the first declaration wins here.
func Schema(def *metadata.Definition) (*openapi3.Schema, error) {
	if def == nil {
		return nil, errors.New("export: definition is required")
	}

	schema := openapi3.NewObjectSchema()
	if schema.Properties == nil {
		schema.Properties = make(openapi3.Schemas)
	}
	if label, ok := def.ItemType(); ok {
		schema.Title = label
	}

	for _, id := range def.Attributes() {
		if _, exists := schema.Properties[id.Name]; exists {
			continue
		}
		schema.Properties[id.Name] = openapi3.NewSchemaRef("", attributeSchema(id))
	}
	return schema, nil
}

// FeedSchemas builds one schema per feed entry, keyed by the item type label
// when declared and by the entry id otherwise. Colliding names fail the
// export.
func FeedSchemas(f *feed.Feed) (openapi3.Schemas, error) {
	if f == nil {
		return nil, errors.New("export: feed is required")
	}

	out := make(openapi3.Schemas, len(f.Entries))
	for i, entry := range f.Entries {
		if entry == nil {
			continue
		}
		def, err := entry.Definition()
		if err != nil {
			return nil, fmt.Errorf("export: entry %q: %w", entry.ID, err)
		}
		schema, err := Schema(def)
		if err != nil {
			return nil, err
		}

		name := entry.ID
		if label, ok := def.ItemType(); ok && label != "" {
			name = label
		}
		if name == "" {
			name = fmt.Sprintf("entry-%d", i+1)
		}
		if _, exists := out[name]; exists {
			return nil, fmt.Errorf("export: duplicate schema name %q", name)
		}
		out[name] = openapi3.NewSchemaRef("", schema)
	}
	return out, nil
}

func attributeSchema(id metadata.AttributeID) *openapi3.Schema {
	schema := schemaForType(id.Type)
	if !id.Type.IsZero() {
		if schema.Extensions == nil {
			schema.Extensions = make(map[string]any, 1)
		}
		schema.Extensions[TypeExtension] = id.Type.Name()
	}
	return schema
}

// schemaForType maps canonical attribute types onto OpenAPI shapes. Unit
// types serialize as strings on the wire ("10 usd"), so they export as
// strings; the vendor extension preserves the precise token.
func schemaForType(t attrtype.Type) *openapi3.Schema {
	switch t {
	case attrtype.Text, attrtype.Location, attrtype.Shipping, attrtype.DateTimeRange,
		attrtype.NumberUnit, attrtype.IntUnit, attrtype.FloatUnit:
		return openapi3.NewStringSchema()
	case attrtype.Number, attrtype.Float:
		return openapi3.NewFloat64Schema()
	case attrtype.Int:
		return openapi3.NewIntegerSchema()
	case attrtype.Boolean:
		return openapi3.NewBoolSchema()
	case attrtype.Date:
		return openapi3.NewStringSchema().WithFormat("date")
	case attrtype.DateTime:
		return openapi3.NewStringSchema().WithFormat("date-time")
	case attrtype.URL:
		return openapi3.NewStringSchema().WithFormat("uri")
	case attrtype.Group:
		return openapi3.NewObjectSchema()
	default:
		return &openapi3.Schema{}
	}
}
