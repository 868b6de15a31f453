package xmlout

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// Indent is the canonical indentation unit of a written document.
const Indent = "  "

// Render marshals a built warehouse node and canonicalizes the result.
func Render(dto any) ([]byte, error) {
	raw, err := xml.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return Canonicalize(raw)
}

// Canonicalize re-parses rendered XML text and emits its canonical byte form:
// UTF-8 with an XML declaration, two-space indentation, and the default
// namespace detected from the root element's qualified name declared exactly
// once, on the root.
func Canonicalize(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	dec := xml.NewDecoder(bytes.NewReader(raw))
	enc := xml.NewEncoder(&buf)
	enc.Indent("", Indent)

	seenRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("canonicalize: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			start := xml.StartElement{Name: xml.Name{Local: t.Name.Local}}
			if !seenRoot {
				seenRoot = true
				if t.Name.Space != "" {
					start.Attr = append(start.Attr, xml.Attr{
						Name:  xml.Name{Local: "xmlns"},
						Value: t.Name.Space,
					})
				}
			}
			for _, attr := range t.Attr {
				// Namespace declarations are re-derived, never copied through.
				if attr.Name.Local == "xmlns" || attr.Name.Space == "xmlns" {
					continue
				}
				start.Attr = append(start.Attr, xml.Attr{
					Name:  xml.Name{Local: attr.Name.Local},
					Value: attr.Value,
				})
			}
			if err := enc.EncodeToken(start); err != nil {
				return nil, fmt.Errorf("canonicalize: %w", err)
			}
		case xml.EndElement:
			end := xml.EndElement{Name: xml.Name{Local: t.Name.Local}}
			if err := enc.EncodeToken(end); err != nil {
				return nil, fmt.Errorf("canonicalize: %w", err)
			}
		case xml.CharData:
			// Whitespace-only runs are leftover formatting, not content.
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			if err := enc.EncodeToken(t); err != nil {
				return nil, fmt.Errorf("canonicalize: %w", err)
			}
		default:
			// Comments, directives, and processing instructions do not
			// survive canonicalization.
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	if !seenRoot {
		return nil, errors.New("canonicalize: document has no root element")
	}
	return buf.Bytes(), nil
}

// Write stores canonical bytes at path through a scoped file handle. The
// handle is released on every exit path; a failed write propagates the error
// unchanged with no retry.
func Write(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
