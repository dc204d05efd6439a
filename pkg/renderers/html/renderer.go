package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-feedmeta/pkg/docs"
	doctemplate "github.com/goliatone/go-feedmeta/pkg/docs/template"
	"github.com/goliatone/go-feedmeta/pkg/docs/template/gotemplate"
	theme "github.com/goliatone/go-theme"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer doctemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer doctemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces a standalone HTML page (or fragment) describing every
// metadata definition in the model.
type Renderer struct {
	templates doctemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, model docs.Model, options docs.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	name := "page"
	if options.Fragment {
		name = "fragment"
	}

	result, err := r.templates.RenderTemplate(templatePath(options.Theme, name), map[string]any{
		"model":  model,
		"theme":  buildThemeContext(options.Theme),
		"styles": stylesheet(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// templatePath honours theme partial overrides keyed by the logical template
// name ("page", "fragment") before falling back to the embedded bundle.
func templatePath(cfg *theme.RendererConfig, name string) string {
	if cfg != nil {
		if override := cfg.Partials[name]; override != "" {
			return override
		}
	}
	return "templates/" + name + ".tpl"
}
