package xml

import (
	"bytes"
	"encoding/xml"
	"io"

	eng "github.com/reoring/mcuschema/internal/engine"
)

type xmlSource struct {
	dec        *xml.Decoder
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for XML.
//
// Element names are reported without their namespace. Namespace declarations
// keep their written form ("xmlns", "xmlns:xsi"); other prefixed attributes
// are reported by local name.
func NewReader(r io.Reader) eng.TokenSource {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	return &xmlSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for XML.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *xmlSource) NextToken() (eng.Token, error) {
	for {
		tok, err := s.dec.Token()
		if err != nil {
			if err == io.EOF {
				return eng.Token{}, io.EOF
			}
			return eng.Token{}, err
		}
		s.lastOffset = s.dec.InputOffset()

		switch v := tok.(type) {
		case xml.StartElement:
			attrs := make([]eng.Attr, 0, len(v.Attr))
			for _, a := range v.Attr {
				attrs = append(attrs, eng.Attr{Name: attrName(a.Name), Value: a.Value})
			}
			return eng.Token{Kind: eng.KindStartElement, Name: v.Name.Local, Attrs: attrs, Offset: s.lastOffset}, nil
		case xml.EndElement:
			return eng.Token{Kind: eng.KindEndElement, Name: v.Name.Local, Offset: s.lastOffset}, nil
		case xml.CharData:
			return eng.Token{Kind: eng.KindText, Text: string(v), Offset: s.lastOffset}, nil
		}
		// comments, processing instructions and directives are not part of the tree
	}
}

func (s *xmlSource) Location() int64 { return s.lastOffset }

func attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return n.Local
}
