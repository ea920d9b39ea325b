package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Header is the XML declaration written by EncodeDocument.
const Header = xml.Header

// Encode writes e and its descendants to w without indentation.
func (e *Element) Encode(w io.Writer) error {
	return e.encode(w, "")
}

// EncodeIndent writes e with each nesting level indented by indent.
func (e *Element) EncodeIndent(w io.Writer, indent string) error {
	return e.encode(w, indent)
}

// EncodeDocument writes the XML declaration followed by the indented tree.
func (e *Element) EncodeDocument(w io.Writer, indent string) error {
	if _, err := io.WriteString(w, Header); err != nil {
		return fmt.Errorf("writing xml header: %w", err)
	}

	if err := e.encode(w, indent); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing trailing newline: %w", err)
	}

	return nil
}

func (e *Element) encode(w io.Writer, indent string) error {
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}

	if err := e.writeTokens(enc); err != nil {
		return err
	}

	if err := enc.Flush(); err != nil {
		return fmt.Errorf("flushing xml encoder: %w", err)
	}

	return nil
}

// writeTokens emits qualified names verbatim in Name.Local so that the
// encoder does not invent its own namespace prefixes.
func (e *Element) writeTokens(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name()}}
	for _, a := range e.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("encoding <%s>: %w", e.Name(), err)
	}

	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return fmt.Errorf("encoding text of <%s>: %w", e.Name(), err)
		}
	}

	for _, c := range e.children {
		if err := c.writeTokens(enc); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("encoding </%s>: %w", e.Name(), err)
	}

	return nil
}
