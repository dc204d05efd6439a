package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	internalLoader "github.com/goliatone/go-feedmeta/internal/feed/loader"
	internalParser "github.com/goliatone/go-feedmeta/internal/feed/parser"
	"github.com/goliatone/go-feedmeta/pkg/catalog"
	"github.com/goliatone/go-feedmeta/pkg/docs"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/renderers/html"
	"github.com/goliatone/go-feedmeta/pkg/renderers/text"
	theme "github.com/goliatone/go-theme"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom feed loader.
func WithLoader(loader pkgfeed.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom feed parser.
func WithParser(parser pkgfeed.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *docs.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that should run against the built docs
// model before rendering.
func WithDecorators(decorators ...docs.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithCatalogFS supplies an fs.FS holding catalog documents. Pass nil to
// disable the embedded defaults.
func WithCatalogFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.catalogFS = fsys
		o.catalogSpecified = true
	}
}

// WithPresetFS loads a JSON preset document from the provided filesystem and
// applies its overrides before the catalog decorator runs.
func WithPresetFS(fsys fs.FS, path string) Option {
	return func(o *Orchestrator) {
		o.presetFS = fsys
		o.presetPath = path
	}
}

// WithTheme sets the theme configuration applied when a request does not
// carry its own.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = cfg
	}
}

// Orchestrator coordinates the full pipeline from feed document to rendered
// documentation. It applies sensible defaults (html renderer, embedded
// catalog) while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader                     pkgfeed.Loader
	parser                     pkgfeed.Parser
	registry                   *docs.Registry
	defaultRenderer            string
	defaultTheme               *theme.RendererConfig
	initialiseErr              error
	defaultsApplied            bool
	decorators                 []docs.Decorator
	presetFS                   fs.FS
	presetPath                 string
	presetConfigured           bool
	catalogFS                  fs.FS
	catalogSpecified           bool
	catalogDecoratorConfigured bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render documentation from a feed.
type Request struct {
	// Source identifies where the feed document lives. Optional when Document
	// is supplied.
	Source pkgfeed.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *pkgfeed.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as theme
	// configuration or fragment output. When omitted, renderers receive the
	// zero-value struct (plus the orchestrator's default theme, if any).
	RenderOptions docs.RenderOptions
}

// Generate executes the loader → parser → model builder → renderer sequence
// and returns the rendered bytes (HTML for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	parsed, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse feed: %w", err)
	}

	model, err := docs.BuildModel(parsed, o.decorators...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build docs model: %w", err)
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		options.Theme = o.defaultTheme
	}

	output, err := renderer.Render(ctx, model, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgfeed.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgfeed.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgfeed.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (docs.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgfeed.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgfeed.NewParserOptions())
	}
	if o.registry == nil {
		o.registry = docs.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(text.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensurePresetDecorator()
	o.ensureCatalogDecorator()

	o.defaultsApplied = true
}

func (o *Orchestrator) ensurePresetDecorator() {
	if o.presetConfigured {
		return
	}
	o.presetConfigured = true

	if o.presetFS == nil || o.presetPath == "" {
		return
	}

	preset, err := NewJSONPresetFromFS(o.presetFS, o.presetPath)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load preset: %w", err)
		return
	}
	o.decorators = append(o.decorators, preset)
}

func (o *Orchestrator) ensureCatalogDecorator() {
	if o.catalogDecoratorConfigured {
		return
	}
	o.catalogDecoratorConfigured = true

	if !o.catalogSpecified && o.catalogFS == nil {
		o.catalogFS = catalog.EmbeddedFS()
	}
	if o.catalogFS == nil {
		return
	}

	store, err := catalog.LoadFS(o.catalogFS, nil)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load catalog: %w", err)
		return
	}
	if store.Empty() {
		return
	}

	decorator, err := catalog.NewDecorator(store)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: catalog decorator: %w", err)
		return
	}
	o.decorators = append(o.decorators, decorator)
}
