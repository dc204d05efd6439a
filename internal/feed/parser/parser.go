package parser

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/extension"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/metadata"
	"github.com/goliatone/go-feedmeta/pkg/xmlns"
)

// Parser implements pkgfeed.Parser with a token walk over encoding/xml. The
// Atom core fields (id, title, updated) are captured as strings; every
// other feed or entry child is dispatched through the extension registry,
// so gm metadata decodes into typed values and the rest survives as Raw
// trees.
type Parser struct {
	registry *extension.Registry
}

// Ensure the implementation satisfies the public interface.
var _ pkgfeed.Parser = (*Parser)(nil)

// New constructs a Parser from pre-resolved options. When no registry is
// supplied a fresh one is built with the metadata codecs registered against
// the configured type lookup.
func New(options pkgfeed.ParserOptions) pkgfeed.Parser {
	reg := options.Registry
	if reg == nil {
		types := options.Types
		if types == nil {
			types = attrtype.Default()
		}
		reg = extension.NewRegistry()
		metadata.MustRegister(reg, types)
	}
	return &Parser{registry: reg}
}

// Parse decodes a Document into the feed model. Malformed XML and
// extension parse failures abort the whole parse.
func (p *Parser) Parse(ctx context.Context, doc pkgfeed.Document) (*pkgfeed.Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("feed parser: document payload is empty")
	}

	dec := xml.NewDecoder(bytes.NewReader(raw))
	root, err := nextStart(dec)
	if err != nil {
		return nil, fmt.Errorf("feed parser: %w", err)
	}
	if root.Name.Local != "feed" {
		return nil, fmt.Errorf("feed parser: unexpected root element %q", root.Name.Local)
	}

	f, err := p.parseFeed(ctx, dec)
	if err != nil {
		return nil, fmt.Errorf("feed parser: %w", err)
	}
	return f, nil
}

func (p *Parser) parseFeed(ctx context.Context, dec *xml.Decoder) (*pkgfeed.Feed, error) {
	f := pkgfeed.NewFeed()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if isAtom(t.Name) {
				switch t.Name.Local {
				case "id":
					if f.ID, err = decodeText(dec, t); err != nil {
						return nil, err
					}
					continue
				case "title":
					if f.Title, err = decodeText(dec, t); err != nil {
						return nil, err
					}
					continue
				case "updated":
					if f.Updated, err = decodeText(dec, t); err != nil {
						return nil, err
					}
					continue
				case "entry":
					if err := ctx.Err(); err != nil {
						return nil, err
					}
					entry, err := p.parseEntry(dec)
					if err != nil {
						return nil, err
					}
					f.Entries = append(f.Entries, entry)
					continue
				}
			}
			if err := p.parseExtension(dec, t, f.Extensions); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return f, nil
		}
	}
}

func (p *Parser) parseEntry(dec *xml.Decoder) (*pkgfeed.Entry, error) {
	entry := pkgfeed.NewEntry()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if isAtom(t.Name) {
				switch t.Name.Local {
				case "id":
					if entry.ID, err = decodeText(dec, t); err != nil {
						return nil, err
					}
					continue
				case "title":
					if entry.Title, err = decodeText(dec, t); err != nil {
						return nil, err
					}
					continue
				case "updated":
					if entry.Updated, err = decodeText(dec, t); err != nil {
						return nil, err
					}
					continue
				}
			}
			if err := p.parseExtension(dec, t, entry.Extensions); err != nil {
				return nil, err
			}
		case xml.EndElement:
			// Nested elements are consumed whole above, so the first end
			// tag seen here closes the entry.
			return entry, nil
		}
	}
}

// parseExtension reads one element subtree and appends its parsed form, or
// the raw tree when nobody claims the name, to the collection.
func (p *Parser) parseExtension(dec *xml.Decoder, start xml.StartElement, col *extension.Collection) error {
	raw := new(extension.Raw)
	if err := raw.UnmarshalXML(dec, start); err != nil {
		return err
	}
	ext, err := p.registry.Parse(raw)
	if err != nil {
		return err
	}
	col.Append(ext)
	return nil
}

// isAtom reports whether the name belongs to the envelope vocabulary. Feeds
// without a namespace declaration resolve to an empty space and are treated
// as Atom.
func isAtom(name xml.Name) bool {
	return name.Space == xmlns.AtomNS || name.Space == ""
}

// nextStart skips prolog tokens until the root start element.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// decodeText collects the direct character data of one element.
func decodeText(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var s string
	if err := dec.DecodeElement(&s, &start); err != nil {
		return "", err
	}
	return s, nil
}
