package attrtype

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownType reports a type token with no registry entry. Callers can
// branch on it with errors.Is.
var ErrUnknownType = errors.New("attrtype: unknown type")

// Lookup resolves a type token from a document into a canonical Type.
// Parsers depend on this single method rather than on a concrete registry.
type Lookup interface {
	ForName(name string) (Type, error)
}

// Registry stores attribute types by token, providing lookup and duplicate
// safeguards. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Type
	ordered []Type
}

// Ensure the registry satisfies the lookup contract.
var _ Lookup = (*Registry)(nil)

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Type)}
}

// Register adds a type by its token. Empty tokens and duplicates return an
// error.
func (r *Registry) Register(t Type) error {
	if t.IsZero() {
		return errors.New("attrtype: type token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[t.name]; exists {
		return fmt.Errorf("attrtype: type %q already registered", t.name)
	}
	r.byName[t.name] = t
	r.ordered = append(r.ordered, t)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(t Type) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// ForName resolves a token to its registered Type. Unknown tokens fail with
// ErrUnknownType; the parse layer propagates that failure rather than
// dropping the attribute.
func (r *Registry) ForName(name string) (Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]
	if !ok {
		return Type{}, fmt.Errorf("%w %q", ErrUnknownType, name)
	}
	return t, nil
}

// Names returns the registered tokens in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.ordered))
	for i, t := range r.ordered {
		names[i] = t.name
	}
	return names
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry preloaded with the canonical types.
// Callers that need a narrower or wider vocabulary build their own registry
// and pass it where a Lookup is accepted.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, t := range []Type{
			Text, Number, Int, Float, NumberUnit, IntUnit, FloatUnit,
			Boolean, Date, DateTime, DateTimeRange, URL, Location,
			Shipping, Group,
		} {
			defaultRegistry.MustRegister(t)
		}
	})
	return defaultRegistry
}
