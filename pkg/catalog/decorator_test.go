package catalog_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-feedmeta/pkg/catalog"
	"github.com/goliatone/go-feedmeta/pkg/docs"
)

func newDecorator(t *testing.T) *catalog.Decorator {
	t.Helper()

	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	decorator, err := catalog.NewDecorator(store)
	if err != nil {
		t.Fatalf("new decorator: %v", err)
	}
	return decorator
}

func TestDecoratorAnnotatesKnownItemTypes(t *testing.T) {
	model := docs.Model{Definitions: []docs.DefinitionDoc{{
		EntryID:     "urn:example:products",
		ItemType:    "Products",
		HasItemType: true,
		Attributes: []docs.AttributeDoc{
			{Name: "price", Type: "floatUnit"},
			{Name: "condition", Type: "int"},
			{Name: "badge"},
		},
	}}}

	if err := newDecorator(t).Decorate(&model); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	doc := model.Definitions[0]
	if doc.Description == "" {
		t.Fatal("expected the item type description to be filled in")
	}

	price := doc.Attributes[0]
	if !price.Recommended {
		t.Fatal("price should be marked recommended")
	}
	if price.Description == "" {
		t.Fatal("price should inherit the catalog description")
	}

	condition := doc.Attributes[1]
	if !condition.Recommended {
		t.Fatal("condition should be marked recommended despite the type mismatch")
	}

	badge := doc.Attributes[2]
	if badge.Recommended {
		t.Fatal("badge is not a catalog attribute and must stay unmarked")
	}

	assertNote(t, doc.Notes, `attribute "condition" is declared as int but the catalog recommends text`)
	assertNote(t, doc.Notes, `recommended attribute "brand" is not declared`)
}

func TestDecoratorNotesUnknownItemTypes(t *testing.T) {
	model := docs.Model{Definitions: []docs.DefinitionDoc{{
		ItemType:    "Vehicles",
		HasItemType: true,
		Attributes:  []docs.AttributeDoc{{Name: "vin"}},
	}}}

	if err := newDecorator(t).Decorate(&model); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	doc := model.Definitions[0]
	if len(doc.Notes) != 1 {
		t.Fatalf("notes = %v, want exactly the unknown-type note", doc.Notes)
	}
	assertNote(t, doc.Notes, `item type "Vehicles" is not in the catalog`)
	if doc.Attributes[0].Recommended {
		t.Fatal("attributes of unknown item types must stay unmarked")
	}
}

func TestDecoratorSkipsEntriesWithoutItemType(t *testing.T) {
	model := docs.Model{Definitions: []docs.DefinitionDoc{{
		EntryID:    "urn:example:bare",
		Attributes: []docs.AttributeDoc{{Name: "color", Type: "text"}},
	}}}

	if err := newDecorator(t).Decorate(&model); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	doc := model.Definitions[0]
	if len(doc.Notes) != 0 {
		t.Fatalf("notes = %v, want none for entries without an item type", doc.Notes)
	}
	if doc.Attributes[0].Recommended {
		t.Fatal("attributes must stay unmarked without an item type")
	}
}

func TestDecoratorConstruction(t *testing.T) {
	if _, err := catalog.NewDecorator(nil); err == nil {
		t.Fatal("expected nil store to fail")
	}
	if err := newDecorator(t).Decorate(nil); err == nil {
		t.Fatal("expected nil model to fail")
	}
}

func assertNote(t *testing.T, notes []string, want string) {
	t.Helper()
	for _, note := range notes {
		if strings.Contains(note, want) {
			return
		}
	}
	t.Fatalf("notes %q missing %q", notes, want)
}
