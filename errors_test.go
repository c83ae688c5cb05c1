package mcuschema_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcuschema "github.com/reoring/mcuschema"
)

func TestIssues_Error(t *testing.T) {
	iss := mcuschema.Issues{
		mcuschema.RootPath().Field("pin").Index(0).Field("foo").Issue(mcuschema.CodeUnknownField, "field", "foo"),
	}
	assert.Equal(t, "unknown_field at /pin/0/foo: unknown field foo", iss.Error())

	for range 4 {
		iss = append(iss, mcuschema.Issue{Path: "/x", Code: mcuschema.CodeTruncated, Message: mcuschema.CodeTruncated})
	}
	assert.Contains(t, iss.Error(), "truncated at /x; truncated at /x; ... (total 5)")
	assert.Equal(t, "", mcuschema.Issues{}.Error())
}

func TestAsIssues_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("STM32F030C6Tx.xml: %w", mcuschema.Fail(mcuschema.CodeMissingField, "field", "refName"))
	iss, ok := mcuschema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/", iss[0].Path)
	assert.Equal(t, "required field refName missing", iss[0].Message)
	assert.True(t, mcuschema.HasCode(err, mcuschema.CodeMissingField))
	assert.False(t, mcuschema.HasCode(err, mcuschema.CodeTypeMismatch))
	assert.Equal(t, mcuschema.CodeMissingField, mcuschema.FirstCode(err))

	_, ok = mcuschema.AsIssues(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "", mcuschema.FirstCode(nil))
}

func TestRebase(t *testing.T) {
	err := mcuschema.Issues{
		{Path: "/", Code: mcuschema.CodeTypeMismatch},
		{Path: "/1", Code: mcuschema.CodeUnrecognizedEnumToken},
		{Path: "name", Code: mcuschema.CodeUnknownField},
	}
	iss, ok := mcuschema.AsIssues(mcuschema.Rebase(err, "/pin/0"))
	require.True(t, ok)
	assert.Equal(t, "/pin/0", iss[0].Path)
	assert.Equal(t, "/pin/0/1", iss[1].Path)
	assert.Equal(t, "/pin/0/name", iss[2].Path)

	plain := mcuschema.Rebase(io.ErrUnexpectedEOF, "/ram")
	iss, ok = mcuschema.AsIssues(plain)
	require.True(t, ok)
	assert.Equal(t, mcuschema.CodeParseError, iss[0].Code)
	assert.Equal(t, "/ram", iss[0].Path)
	assert.ErrorIs(t, plain, io.ErrUnexpectedEOF)

	assert.NoError(t, mcuschema.Rebase(nil, "/x"))
}

func TestPathRef(t *testing.T) {
	p := mcuschema.RootPath().Field("a/b").Index(2).Field("")
	assert.Equal(t, "/a~1b/2", p.Pointer())
	assert.Equal(t, "/", mcuschema.RootPath().Pointer())
	assert.Equal(t, "/pin/3/signal", mcuschema.ParsePath("/pin/3").Field("signal").Pointer())

	it := p.Issue(mcuschema.CodeTypeMismatch, "expected", "int", "got", "bool")
	assert.Equal(t, "expected int, got bool", it.Message)
	assert.Equal(t, int64(-1), it.Offset)
	assert.Equal(t, "int", it.Params["expected"])
}
