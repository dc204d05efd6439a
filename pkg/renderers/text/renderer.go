package text

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-feedmeta/pkg/docs"
)

const defaultWidth = 80

// Option configures the text renderer.
type Option func(*Renderer)

// WithWidth sets the wrap column used when render options do not specify one.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// Renderer produces a plain-text report of every metadata definition in the
// model, suitable for terminals and logs.
type Renderer struct {
	width int
}

// New constructs the text renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{width: defaultWidth}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, model docs.Model, options docs.RenderOptions) ([]byte, error) {
	width := options.Width
	if width <= 0 {
		width = r.width
	}

	var b strings.Builder
	writeHeader(&b, model, width)
	for _, def := range model.Definitions {
		b.WriteByte('\n')
		writeDefinition(&b, def, width)
	}
	return []byte(b.String()), nil
}

func writeHeader(b *strings.Builder, model docs.Model, width int) {
	title := model.Title
	if title == "" {
		title = "Feed metadata"
	}
	fmt.Fprintf(b, "%s\n%s\n", title, underline(title, '=', width))
	if model.Updated != "" {
		fmt.Fprintf(b, "Updated %s\n", model.Updated)
	}
}

func writeDefinition(b *strings.Builder, def docs.DefinitionDoc, width int) {
	heading := "No item type declared"
	if def.HasItemType {
		heading = def.ItemType
		if heading == "" {
			heading = `""`
		}
	}
	if def.EntryTitle != "" && def.EntryTitle != heading {
		heading = fmt.Sprintf("%s (%s)", heading, def.EntryTitle)
	}
	fmt.Fprintf(b, "%s\n%s\n", heading, underline(heading, '-', width))

	if def.Description != "" {
		writeWrapped(b, plainText(def.Description), "", width)
	}

	if len(def.Attributes) == 0 {
		b.WriteString("No attributes declared.\n")
	} else {
		b.WriteString("Attributes:\n")
		for _, attr := range def.Attributes {
			token := attr.Type
			if token == "" {
				token = "untyped"
			}
			line := fmt.Sprintf("  * %s (%s)", attr.Name, token)
			if attr.Recommended {
				line += " [recommended]"
			}
			b.WriteString(line)
			b.WriteByte('\n')
			if attr.Description != "" {
				writeWrapped(b, plainText(attr.Description), "      ", width)
			}
		}
	}

	if len(def.Notes) > 0 {
		b.WriteString("Notes:\n")
		for _, note := range def.Notes {
			fmt.Fprintf(b, "  - %s\n", note)
		}
	}
}

func underline(heading string, char byte, width int) string {
	n := len(heading)
	if n > width {
		n = width
	}
	return strings.Repeat(string(char), n)
}

// writeWrapped emits s wrapped at width, prefixing every line with indent.
func writeWrapped(b *strings.Builder, s, indent string, width int) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return
	}
	avail := width - len(indent)
	if avail < 16 {
		avail = 16
	}

	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > avail {
			fmt.Fprintf(b, "%s%s\n", indent, line)
			line = word
			continue
		}
		line += " " + word
	}
	fmt.Fprintf(b, "%s%s\n", indent, line)
}

var (
	stripOnce   sync.Once
	stripPolicy *bluemonday.Policy
)

// plainText drops the inline markup catalog descriptions may carry and
// decodes the entities the sanitizer leaves behind.
func plainText(s string) string {
	stripOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(stripPolicy.Sanitize(s))
}
