package extension

import (
	"encoding/xml"
	"strings"

	"github.com/goliatone/go-feedmeta/pkg/xmlns"
)

// Raw is an extension element kept as parsed: the resolved name, its
// attributes, and its ordered content (character data interleaved with
// child elements). It is the fallback representation for kinds no parser
// claims, and the input handed to element codecs.
type Raw struct {
	XMLName xml.Name
	Attr    []xml.Attr
	Content []Content
}

// Content is one unit of element content. Element is set for a child
// element; otherwise Text holds a character-data segment.
type Content struct {
	Element *Raw
	Text    string
}

// Ensure Raw satisfies the codec interfaces.
var (
	_ Extension       = (*Raw)(nil)
	_ xml.Unmarshaler = (*Raw)(nil)
	_ xml.Marshaler   = (*Raw)(nil)
)

// ExtensionKind derives the kind from the element name.
func (r *Raw) ExtensionKind() Kind {
	return KindForName(r.XMLName)
}

// Children returns the direct child elements in document order.
func (r *Raw) Children() []*Raw {
	if r == nil {
		return nil
	}
	var children []*Raw
	for _, c := range r.Content {
		if c.Element != nil {
			children = append(children, c.Element)
		}
	}
	return children
}

// Text returns the concatenated character data of the whole subtree in
// document order. No trimming or whitespace normalization is applied.
func (r *Raw) Text() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	r.appendText(&b)
	return b.String()
}

func (r *Raw) appendText(b *strings.Builder) {
	for _, c := range r.Content {
		if c.Element != nil {
			c.Element.appendText(b)
			continue
		}
		b.WriteString(c.Text)
	}
}

// AttrValue returns the value of the first attribute whose local name
// matches, in document order. The wire format writes extension attributes
// unqualified, so matching ignores the namespace.
func (r *Raw) AttrValue(local string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, a := range r.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// UnmarshalXML builds the element tree from the decoder stream. Namespace
// declaration attributes are dropped; the decoder has already resolved
// prefixes into Space values and the writer re-derives declarations from
// the name table.
func (r *Raw) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r.XMLName = start.Name
	r.Attr = nil
	r.Content = nil
	for _, a := range start.Attr {
		if isNamespaceDecl(a.Name) {
			continue
		}
		r.Attr = append(r.Attr, a)
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Raw{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			r.Content = append(r.Content, Content{Element: child})
		case xml.CharData:
			r.Content = append(r.Content, Content{Text: string(t)})
		case xml.EndElement:
			return nil
		}
	}
}

// MarshalXML re-emits the element using the xmlns name table: names in a
// registered namespace serialize in prefixed (or default-namespace) form;
// anything else declares its namespace inline.
func (r *Raw) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := startElementFor(r.XMLName)
	for _, a := range r.Attr {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name.Local},
			Value: a.Value,
		})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range r.Content {
		if c.Element != nil {
			if err := c.Element.MarshalXML(e, xml.StartElement{}); err != nil {
				return err
			}
			continue
		}
		if err := e.EncodeToken(xml.CharData(c.Text)); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// startElementFor maps a resolved name onto its serialized form. Names in
// an unregistered namespace fall back to an inline xmlns declaration so the
// output stays well formed.
func startElementFor(name xml.Name) xml.StartElement {
	prefix, ok := xmlns.PrefixFor(name.Space)
	switch {
	case ok && prefix == "":
		return xml.StartElement{Name: xml.Name{Local: name.Local}}
	case ok:
		return xml.StartElement{Name: xml.Name{Local: prefix + ":" + name.Local}}
	default:
		return xml.StartElement{
			Name: xml.Name{Local: name.Local},
			Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: name.Space}},
		}
	}
}

func isNamespaceDecl(name xml.Name) bool {
	return name.Local == "xmlns" || name.Space == "xmlns"
}
