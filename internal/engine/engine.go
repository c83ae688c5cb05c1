package engine

import (
	"errors"
	"io"
)

// Kind represents token kinds produced by a document driver.
type Kind int

const (
	KindStartElement Kind = iota
	KindEndElement
	KindText
)

// Attr is one attribute as written in the document.
type Attr struct {
	Name  string
	Value string
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	Name   string // element name for start/end tokens
	Attrs  []Attr // start tokens only, document order
	Text   string // character data for text tokens
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// Element is one decoded element. Text holds the direct character data
// segments in document order; descendants keep their own text.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     []string
	Offset   int64
}

// ErrNoRoot is returned when the source ends before any element starts.
var ErrNoRoot = errors.New("engine: document has no root element")

// DecodeTree builds the element tree rooted at the first start element of src.
// Character data outside the root is discarded; tokens after the root's end
// are not consumed.
func DecodeTree(src TokenSource) (*Element, error) {
	for {
		tok, err := src.NextToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoRoot
			}
			return nil, err
		}
		switch tok.Kind {
		case KindStartElement:
			return decodeElement(src, tok)
		case KindEndElement:
			return nil, IssueError{SimpleIssue{Code: "parse_error", Path: "/", Message: "unexpected end element " + tok.Name}}
		}
	}
}

func decodeElement(src TokenSource, start Token) (*Element, error) {
	el := &Element{Name: start.Name, Attrs: start.Attrs, Offset: start.Offset}
	for {
		tok, err := src.NextToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		switch tok.Kind {
		case KindStartElement:
			child, err := decodeElement(src, tok)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case KindText:
			el.Text = append(el.Text, tok.Text)
		case KindEndElement:
			return el, nil
		}
	}
}
