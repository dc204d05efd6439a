package extension

// Collection is an ordered, heterogeneous list of extension elements, owned
// by a feed entry and shared with any projection reading it. The zero value
// is ready to use. Collections are not safe for concurrent mutation;
// callers serialize access, matching the feed model's single-goroutine
// ownership.
type Collection struct {
	items []Extension
}

// NewCollection builds a collection from the given extensions, keeping
// their order. Nil entries are dropped.
func NewCollection(items ...Extension) *Collection {
	c := &Collection{}
	c.Append(items...)
	return c
}

// Append adds extensions at the end of the collection, preserving argument
// order and skipping nils. Append performs no kind deduplication; it is the
// parser-side primitive. Use ReplaceOrInsert to uphold at-most-one kinds.
func (c *Collection) Append(items ...Extension) {
	for _, item := range items {
		if item == nil {
			continue
		}
		c.items = append(c.items, item)
	}
}

// FindFirst returns the first extension of the given kind in document
// order, or ok=false when the kind is absent.
func (c *Collection) FindFirst(kind Kind) (Extension, bool) {
	if c == nil {
		return nil, false
	}
	for _, item := range c.items {
		if item.ExtensionKind() == kind {
			return item, true
		}
	}
	return nil, false
}

// ReplaceOrInsert installs ext as the only extension of the given kind: the
// first existing element of that kind is replaced in place, later
// duplicates are dropped, and when none exists ext is appended. Unrelated
// extensions keep their positions. A nil ext is ignored.
func (c *Collection) ReplaceOrInsert(kind Kind, ext Extension) {
	if c == nil || ext == nil {
		return
	}
	replaced := false
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ExtensionKind() != kind {
			kept = append(kept, item)
			continue
		}
		if !replaced {
			kept = append(kept, ext)
			replaced = true
		}
	}
	if !replaced {
		kept = append(kept, ext)
	}
	c.items = kept
}

// Remove deletes every extension of the given kind and reports whether any
// was present.
func (c *Collection) Remove(kind Kind) bool {
	if c == nil {
		return false
	}
	removed := false
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ExtensionKind() == kind {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return removed
}

// Len returns the number of extensions held.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// All returns a copy of the extension list in document order.
func (c *Collection) All() []Extension {
	if c == nil || len(c.items) == 0 {
		return nil
	}
	out := make([]Extension, len(c.items))
	copy(out, c.items)
	return out
}
