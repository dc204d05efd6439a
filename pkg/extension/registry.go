package extension

import (
	"encoding/xml"
	"fmt"
	"sync"
)

// ParseFunc converts a raw element into its typed extension. A ParseFunc
// owns the malformed-input failures of its element shape; returning an
// error aborts the surrounding document parse.
type ParseFunc func(raw *Raw) (Extension, error)

// Registry dispatches raw elements to the parser registered for their
// resolved name. Elements nobody claims pass through as Raw, keeping the
// framework forward-compatible with extension kinds it does not know.
type Registry struct {
	mu      sync.RWMutex
	parsers map[xml.Name]ParseFunc
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[xml.Name]ParseFunc)}
}

// Register adds a parser for a resolved element name. Duplicate names and
// nil parsers return an error.
func (r *Registry) Register(name xml.Name, fn ParseFunc) error {
	if fn == nil {
		return fmt.Errorf("extension: parser for %s is nil", nameString(name))
	}
	if name.Local == "" {
		return fmt.Errorf("extension: element local name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.parsers[name]; exists {
		return fmt.Errorf("extension: parser for %s already registered", nameString(name))
	}
	r.parsers[name] = fn
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name xml.Name, fn ParseFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Parse resolves raw into a typed extension when a parser is registered for
// its name, and returns raw itself otherwise.
func (r *Registry) Parse(raw *Raw) (Extension, error) {
	if raw == nil {
		return nil, fmt.Errorf("extension: raw element is nil")
	}

	r.mu.RLock()
	fn, ok := r.parsers[raw.XMLName]
	r.mu.RUnlock()

	if !ok {
		return raw, nil
	}
	ext, err := fn(raw)
	if err != nil {
		return nil, fmt.Errorf("extension: parse %s: %w", nameString(raw.XMLName), err)
	}
	return ext, nil
}

func nameString(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + " " + name.Local
}
