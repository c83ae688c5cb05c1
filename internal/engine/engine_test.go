package engine

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *sliceSource) Location() int64 { return int64(s.pos * 10) }

func start(name string, attrs ...Attr) Token {
	return Token{Kind: KindStartElement, Name: name, Attrs: attrs}
}
func end(name string) Token { return Token{Kind: KindEndElement, Name: name} }
func text(s string) Token { return Token{Kind: KindText, Text: s} }

func TestDecodeTree_NestedChildrenAndText(t *testing.T) {
	src := &sliceSource{toks: []Token{
		text("\n"),
		start("Mcu", Attr{Name: "RefName", Value: "STM32F030C6Tx"}),
		start("Ram"), text("4"), end("Ram"),
		text("  "),
		start("Pin", Attr{Name: "Name", Value: "PA0"}),
		start("Signal", Attr{Name: "Name", Value: "ADC_IN0"}), end("Signal"),
		end("Pin"),
		end("Mcu"),
	}}
	root, err := DecodeTree(src)
	require.NoError(t, err)
	assert.Equal(t, "Mcu", root.Name)
	require.Len(t, root.Children, 2)
	assert.Equal(t, []string{"4"}, root.Children[0].Text)
	assert.Equal(t, []string{"  "}, root.Text)
	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, "Signal", root.Children[1].Children[0].Name)
}

func TestDecodeTree_Errors(t *testing.T) {
	_, err := DecodeTree(&sliceSource{toks: []Token{text(" ")}})
	assert.ErrorIs(t, err, ErrNoRoot)

	_, err = DecodeTree(&sliceSource{toks: []Token{start("Mcu"), start("Pin")}})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestEnforcement_MaxDepth(t *testing.T) {
	src := WrapWithEnforcement(&sliceSource{toks: []Token{
		start("a"), start("b"), start("c"), end("c"), end("b"), end("a"),
	}}, EnforceOptions{MaxDepth: 2})
	_, err := DecodeTree(src)
	var ie IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "parse_error", ie.Code)
	assert.Equal(t, "/a/b/0/c/0", ie.Path)
}

func TestEnforcement_FoldedDuplicateAttributes(t *testing.T) {
	toks := []Token{
		start("Pin", Attr{Name: "Name", Value: "PA0"}, Attr{Name: "NAME", Value: "PA1"}),
		end("Pin"),
	}

	var sunk []SimpleIssue
	_, err := DecodeTree(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { sunk = append(sunk, si) },
	}))
	require.NoError(t, err)
	require.Len(t, sunk, 1)
	assert.Equal(t, "duplicate_key", sunk[0].Code)

	_, err = DecodeTree(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{OnDuplicate: DupError}))
	var ie IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "/Pin/NAME", ie.Path)
}

func TestEnforcement_MaxBytes(t *testing.T) {
	src := WrapWithEnforcement(&sliceSource{toks: []Token{
		start("a"), start("b"), end("b"), end("a"),
	}}, EnforceOptions{MaxBytes: 15})
	_, err := DecodeTree(src)
	var ie IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "truncated", ie.Code)
}

func TestFoldMapping(t *testing.T) {
	entries, iss := FoldMapping(map[string]any{"Name": "PA0", "position": "100"})
	require.Nil(t, iss)
	require.Len(t, entries, 2)
	assert.Equal(t, "name", entries[0].Folded)
	assert.Equal(t, "Name", entries[0].Key)

	_, iss = FoldMapping(map[string]any{"Name": "PA0", "name": "PA1"})
	require.NotNil(t, iss)
	assert.Equal(t, "duplicate_key", iss.Code)
	assert.Equal(t, "/name", iss.Path)
}
