package feed

import (
	"context"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/extension"
)

// Parser decodes feed documents into the Feed model, dispatching extension
// elements through a parse registry so gm metadata comes back typed and
// unknown extensions survive as raw trees.
type Parser interface {
	Parse(ctx context.Context, doc Document) (*Feed, error)
}

// ParserOptions exposes the parser's seams: which extension registry
// handles non-Atom children and which type lookup resolves attribute type
// tokens when the default registry is built.
type ParserOptions struct {
	// Registry dispatches extension elements by resolved name. Nil means
	// the parser builds a default registry with the metadata codecs
	// registered.
	Registry *extension.Registry

	// Types resolves attribute type tokens for the default registry. Nil
	// means the canonical attrtype registry. Ignored when Registry is set;
	// a custom registry already owns its lookups.
	Types attrtype.Lookup
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithRegistry injects a custom extension parse registry.
func WithRegistry(reg *extension.Registry) ParserOption {
	return func(opts *ParserOptions) {
		opts.Registry = reg
	}
}

// WithTypes injects the attribute-type lookup used by the default registry.
func WithTypes(types attrtype.Lookup) ParserOption {
	return func(opts *ParserOptions) {
		opts.Types = types
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level feedmeta package to prevent import cycles.
