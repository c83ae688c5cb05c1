package mcuschema

import (
	"iter"
	"strings"

	eng "github.com/reoring/mcuschema/internal/engine"
)

// Node is a read-only view of one element of a hierarchical document.
type Node interface {
	// TagName returns the element name as written (namespace prefix dropped).
	TagName() string
	// Attributes returns the element's attributes.
	Attributes() Attributes
	// Children yields element children in document order. Text, comments and
	// processing instructions are not children. Ranging again restarts.
	Children() iter.Seq[Node]
	// Text returns the concatenated direct character data of the element,
	// excluding the text of descendants.
	Text() string
}

// Mapping is the flat source form: field name to raw or already-typed value.
// Values may be sequences ([]any) or nested mappings.
type Mapping = map[string]any

// Attr is one attribute as written in the document.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an immutable attribute set with case-insensitive lookup.
// Original names and values are preserved for iteration.
type Attributes struct {
	list  []Attr
	index map[string]int
}

// NewAttributes builds an attribute set. When two names fold to the same key
// the later one wins lookups; iteration still yields both.
func NewAttributes(attrs ...Attr) Attributes {
	a := Attributes{list: append([]Attr(nil), attrs...)}
	if len(attrs) > 0 {
		a.index = make(map[string]int, len(attrs))
		for i, at := range attrs {
			a.index[eng.Fold(at.Name)] = i
		}
	}
	return a
}

// Get returns the raw value of the attribute whose name matches name
// case-insensitively.
func (a Attributes) Get(name string) (string, bool) {
	i, ok := a.index[eng.Fold(name)]
	if !ok {
		return "", false
	}
	return a.list[i].Value, true
}

// Len returns the number of attributes.
func (a Attributes) Len() int { return len(a.list) }

// All yields original name/value pairs in document order.
func (a Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, at := range a.list {
			if !yield(at.Name, at.Value) {
				return
			}
		}
	}
}

// Element is the concrete Node produced by the document readers.
type Element struct {
	name     string
	attrs    Attributes
	children []*Element
	text     string
	offset   int64
}

var _ Node = (*Element)(nil)

// NewElement builds an element by hand. Useful for synthetic documents and
// tests.
func NewElement(name string, attrs []Attr, text string, children ...*Element) *Element {
	return &Element{name: name, attrs: NewAttributes(attrs...), children: children, text: text, offset: -1}
}

func (e *Element) TagName() string        { return e.name }
func (e *Element) Attributes() Attributes { return e.attrs }
func (e *Element) Text() string           { return e.text }

// Offset returns the byte offset of the element's start tag, or -1.
func (e *Element) Offset() int64 { return e.offset }

func (e *Element) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, c := range e.children {
			if !yield(c) {
				return
			}
		}
	}
}

func elementFromEngine(el *eng.Element) *Element {
	attrs := make([]Attr, len(el.Attrs))
	for i, a := range el.Attrs {
		attrs[i] = Attr{Name: a.Name, Value: a.Value}
	}
	out := &Element{
		name:   el.Name,
		attrs:  NewAttributes(attrs...),
		text:   strings.Join(el.Text, ""),
		offset: el.Offset,
	}
	if len(el.Children) > 0 {
		out.children = make([]*Element, len(el.Children))
		for i, c := range el.Children {
			out.children[i] = elementFromEngine(c)
		}
	}
	return out
}
