package feed

import (
	"bytes"
	"encoding/xml"
	"errors"

	"github.com/goliatone/go-feedmeta/pkg/xmlns"
)

// Marshal serializes the feed as an indented XML document with the Atom
// default namespace and the gm metadata prefix declared on the root.
func Marshal(f *Feed) ([]byte, error) {
	if f == nil {
		return nil, errors.New("feed: feed is required")
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// MarshalEntry serializes a single entry as an indented fragment, ready to
// paste into an existing feed. Namespace declarations stay with the feed
// root, so the fragment carries prefixed names only.
func MarshalEntry(entry *Entry) ([]byte, error) {
	if entry == nil {
		return nil, errors.New("feed: entry is required")
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(entry); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// MarshalXML writes the <feed> envelope: namespace declarations, the Atom
// core fields that are set, feed-level extensions, then the entries.
func (f *Feed) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "feed"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: xmlns.AtomNS},
			{Name: xml.Name{Local: "xmlns:" + xmlns.MetadataPrefix}, Value: xmlns.MetadataNS},
		},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeTextElement(e, "id", f.ID); err != nil {
		return err
	}
	if err := encodeTextElement(e, "title", f.Title); err != nil {
		return err
	}
	if err := encodeTextElement(e, "updated", f.Updated); err != nil {
		return err
	}
	for _, ext := range f.Extensions.All() {
		if err := e.Encode(ext); err != nil {
			return err
		}
	}
	for _, entry := range f.Entries {
		if entry == nil {
			continue
		}
		if err := e.Encode(entry); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// MarshalXML writes one <entry> element. Standalone entry output is a
// fragment: namespace declarations belong to the enclosing feed root.
func (en *Entry) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "entry"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeTextElement(e, "id", en.ID); err != nil {
		return err
	}
	if err := encodeTextElement(e, "title", en.Title); err != nil {
		return err
	}
	if err := encodeTextElement(e, "updated", en.Updated); err != nil {
		return err
	}
	for _, ext := range en.Extensions.All() {
		if err := e.Encode(ext); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// encodeTextElement writes <local>text</local>, skipping unset fields.
func encodeTextElement(e *xml.Encoder, local, text string) error {
	if text == "" {
		return nil
	}
	start := xml.StartElement{Name: xml.Name{Local: local}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}
