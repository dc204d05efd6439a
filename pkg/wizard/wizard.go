package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/catalog"
	"github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
)

const (
	customItemTypeOption = "something else"
	untypedOption        = "(untyped)"
)

// Option configures the wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the prompt driver used for the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithCatalog supplies the item-type catalog behind type suggestions and
// recommended-attribute preselection. Pass nil to run without suggestions.
func WithCatalog(store *catalog.Store) Option {
	return func(w *Wizard) {
		w.store = store
		w.storeSpecified = true
	}
}

// WithTypes overrides the attribute type vocabulary offered by the type
// picker.
func WithTypes(types *attrtype.Registry) Option {
	return func(w *Wizard) {
		if types != nil {
			w.types = types
		}
	}
}

// Wizard drives an interactive session that builds one feed entry carrying an
// item-type definition. Defaults: survey driver, embedded catalog, canonical
// type vocabulary.
type Wizard struct {
	driver         PromptDriver
	store          *catalog.Store
	storeSpecified bool
	types          *attrtype.Registry
}

// New constructs a wizard, applying options over the defaults.
func New(options ...Option) (*Wizard, error) {
	w := &Wizard{
		driver: newSurveyDriver(),
		types:  attrtype.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}

	if !w.storeSpecified {
		store, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("wizard: load catalog: %w", err)
		}
		w.store = store
	}
	return w, nil
}

// Result carries the constructed entry and its serialized form.
type Result struct {
	Entry *feed.Entry

	// Fragment is the indented <entry> element, ready to paste inside an
	// existing <feed>.
	Fragment []byte
}

// Run executes the interactive session: entry identity, item type, then an
// attribute loop. Aborting any prompt surfaces ErrAborted.
func (w *Wizard) Run(ctx context.Context) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("wizard: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := feed.NewEntry()

	id, err := w.driver.Input(ctx, InputConfig{
		Message: "Entry ID",
		Help:    "Optional Atom entry identifier, e.g. urn:example:products.",
	})
	if err != nil {
		return nil, err
	}
	entry.ID = strings.TrimSpace(id)

	title, err := w.driver.Input(ctx, InputConfig{
		Message: "Entry title",
		Help:    "Optional human heading for the entry.",
	})
	if err != nil {
		return nil, err
	}
	entry.Title = strings.TrimSpace(title)

	def, err := entry.Definition()
	if err != nil {
		return nil, err
	}

	itemType, fromCatalog, err := w.promptItemType(ctx)
	if err != nil {
		return nil, err
	}
	def.SetItemType(itemType)

	ids, err := w.promptAttributes(ctx, itemType, fromCatalog)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		def.SetAttributes(ids)
	}

	fragment, err := feed.MarshalEntry(entry)
	if err != nil {
		return nil, fmt.Errorf("wizard: marshal entry: %w", err)
	}
	return &Result{Entry: entry, Fragment: fragment}, nil
}

// promptItemType offers the catalog's names plus an escape hatch to a
// freeform label. The bool reports whether the pick came from the catalog.
func (w *Wizard) promptItemType(ctx context.Context) (string, bool, error) {
	names := w.store.Names()
	if len(names) == 0 {
		name, err := w.promptCustomItemType(ctx)
		return name, false, err
	}

	options := append(append([]string(nil), names...), customItemTypeOption)
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:  "Item type",
		Options:  options,
		Help:     "Well-known types come with recommended attributes.",
		PageSize: 10,
	})
	if err != nil {
		return "", false, err
	}
	if idx < 0 || idx >= len(names) {
		name, err := w.promptCustomItemType(ctx)
		return name, false, err
	}
	return names[idx], true, nil
}

func (w *Wizard) promptCustomItemType(ctx context.Context) (string, error) {
	name, err := w.driver.Input(ctx, InputConfig{
		Message:   "Item type name",
		Help:      "Freeform label, e.g. products.",
		Validator: requireNonEmpty("item type name"),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

func (w *Wizard) promptAttributes(ctx context.Context, itemType string, fromCatalog bool) ([]metadata.AttributeID, error) {
	var ids []metadata.AttributeID
	declared := make(map[string]struct{})

	if fromCatalog {
		preset, err := w.promptRecommended(ctx, itemType)
		if err != nil {
			return nil, err
		}
		for _, id := range preset {
			declared[id.Name] = struct{}{}
		}
		ids = preset
	}

	for {
		more, err := w.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add another attribute?",
			Default: len(ids) == 0,
		})
		if err != nil {
			return nil, err
		}
		if !more {
			return ids, nil
		}

		id, err := w.promptAttribute(ctx, declared)
		if err != nil {
			return nil, err
		}
		declared[id.Name] = struct{}{}
		ids = append(ids, id)
	}
}

// promptRecommended preselects every recommended attribute of the chosen
// catalog type and lets the user deselect.
func (w *Wizard) promptRecommended(ctx context.Context, itemType string) ([]metadata.AttributeID, error) {
	it, ok := w.store.ItemType(strings.ToLower(itemType))
	if !ok || len(it.Attributes) == 0 {
		return nil, nil
	}

	options := make([]string, len(it.Attributes))
	defaults := make([]int, len(it.Attributes))
	for i, attr := range it.Attributes {
		label := attr.Name
		if !attr.Type.IsZero() {
			label = fmt.Sprintf("%s (%s)", attr.Name, attr.Type.Name())
		}
		options[i] = label
		defaults[i] = i
	}

	picked, err := w.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Recommended attributes",
		Options:  options,
		Defaults: defaults,
		Help:     "Deselect anything the feed does not carry.",
		PageSize: 15,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]metadata.AttributeID, 0, len(picked))
	for _, idx := range picked {
		if idx < 0 || idx >= len(it.Attributes) {
			continue
		}
		attr := it.Attributes[idx]
		ids = append(ids, metadata.AttributeID{Name: attr.Name, Type: attr.Type})
	}
	return ids, nil
}

func (w *Wizard) promptAttribute(ctx context.Context, declared map[string]struct{}) (metadata.AttributeID, error) {
	for {
		name, err := w.driver.Input(ctx, InputConfig{
			Message:   "Attribute name",
			Validator: requireNonEmpty("attribute name"),
		})
		if err != nil {
			return metadata.AttributeID{}, err
		}
		name = strings.TrimSpace(name)
		if _, dup := declared[name]; dup {
			if err := w.driver.Info(ctx, fmt.Sprintf("attribute %q is already declared", name)); err != nil {
				return metadata.AttributeID{}, err
			}
			continue
		}

		typ, err := w.promptType(ctx)
		if err != nil {
			return metadata.AttributeID{}, err
		}
		return metadata.AttributeID{Name: name, Type: typ}, nil
	}
}

func (w *Wizard) promptType(ctx context.Context) (attrtype.Type, error) {
	options := append([]string{untypedOption}, w.types.Names()...)
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:  "Attribute type",
		Options:  options,
		Help:     "Pick the declared value type, or leave the attribute untyped.",
		PageSize: 16,
	})
	if err != nil {
		return attrtype.Type{}, err
	}
	if idx <= 0 || idx >= len(options) {
		return attrtype.Type{}, nil
	}
	return w.types.ForName(options[idx])
}

func requireNonEmpty(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
