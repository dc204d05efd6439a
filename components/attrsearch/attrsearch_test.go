package attrsearch

import (
	"testing"
)

func TestDefaultEntries_ContainsCatalogAttributes(t *testing.T) {
	entries, err := DefaultEntries()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) < 30 {
		t.Fatalf("expected a reasonably sized vocabulary, got %d", len(entries))
	}

	for _, expected := range []string{"products/price", "products/condition", "housing/price"} {
		if !containsValue(entries, expected) {
			t.Fatalf("expected entry %q to be present", expected)
		}
	}
}

func TestStoreEntries_NilStoreReturnsNil(t *testing.T) {
	if entries := StoreEntries(nil); entries != nil {
		t.Fatalf("expected nil entries, got %#v", entries)
	}
}

func TestSearch_CaseInsensitiveContains(t *testing.T) {
	entries := pickerEntries()
	opts := NewOptions(WithEmptySearchMode(EmptySearchNone))

	results := Search(entries, "PrIcE", 10, opts)
	if len(results) != 2 {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestSearch_PrefixBeforeContains(t *testing.T) {
	entries := []Entry{
		{Value: "products/payment_notes", Label: "payment_notes"},
		{Value: "events/notes", Label: "notes (text)"},
	}
	opts := NewOptions(WithEmptySearchMode(EmptySearchNone))

	results := Search(entries, "notes", 10, opts)
	want := []string{"events/notes", "products/payment_notes"}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d: %#v", len(want), len(results), results)
	}
	for i := range want {
		if results[i].Value != want[i] {
			t.Fatalf("unexpected ordering at %d: got %q want %q (results: %#v)", i, results[i].Value, want[i], results)
		}
	}
}

func TestSearch_LimitApplied(t *testing.T) {
	entries := pickerEntries()
	opts := NewOptions(WithDefaultLimit(2), WithMaxLimit(3), WithEmptySearchMode(EmptySearchTop))

	results := Search(entries, "", 0, opts)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %#v", len(results), results)
	}
}

func TestSearchOptions_MapsValueAndLabel(t *testing.T) {
	entries := []Entry{{Value: "products/upc", Label: "upc (text)"}}
	opts := NewOptions(WithEmptySearchMode(EmptySearchNone))

	results := SearchOptions(entries, "upc", 10, opts)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Value != "products/upc" || results[0].Label != "upc (text)" {
		t.Fatalf("unexpected option: %#v", results[0])
	}
}

func containsValue(entries []Entry, value string) bool {
	for _, entry := range entries {
		if entry.Value == value {
			return true
		}
	}
	return false
}
