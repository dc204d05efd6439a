package attrsearch

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-feedmeta/pkg/catalog"
)

// Entry is one searchable attribute. Value is the stable identifier
// ("products/price"); Label is the human form shown in pickers
// ("price (floatUnit)").
type Entry struct {
	Value string
	Label string
}

var (
	defaultOnce    sync.Once
	defaultEntries []Entry
	defaultErr     error
)

// DefaultEntries returns the attribute vocabulary of the embedded catalog,
// built once and copied per call.
func DefaultEntries() ([]Entry, error) {
	defaultOnce.Do(func() {
		store, err := catalog.Default()
		if err != nil {
			defaultErr = err
			return
		}
		defaultEntries = StoreEntries(store)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Entry{}, defaultEntries...), nil
}

// StoreEntries flattens a catalog store into search entries, one per
// recommended attribute, in type-name order then catalog order.
func StoreEntries(store *catalog.Store) []Entry {
	if store == nil || store.Empty() {
		return nil
	}

	entries := make([]Entry, 0, 64)
	for _, name := range store.Names() {
		it, ok := store.ItemType(name)
		if !ok {
			continue
		}
		for _, attr := range it.Attributes {
			entries = append(entries, Entry{
				Value: name + "/" + attr.Name,
				Label: entryLabel(attr),
			})
		}
	}
	return entries
}

func entryLabel(attr catalog.Attribute) string {
	if attr.Type.IsZero() {
		return attr.Name
	}
	return fmt.Sprintf("%s (%s)", attr.Name, attr.Type.Name())
}
