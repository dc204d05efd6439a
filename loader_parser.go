package feedmeta

import (
	internalLoader "github.com/goliatone/go-feedmeta/internal/feed/loader"
	internalParser "github.com/goliatone/go-feedmeta/internal/feed/parser"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgfeed.LoaderOption) pkgfeed.Loader {
	cfg := pkgfeed.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgfeed.ParserOption) pkgfeed.Parser {
	cfg := pkgfeed.NewParserOptions(options...)
	return internalParser.New(cfg)
}
