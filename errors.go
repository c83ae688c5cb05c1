package mcuschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTagNameMismatch          = "tag_name_mismatch"
	CodeUnknownField             = "unknown_field"
	CodeMissingField             = "missing_field"
	CodeUnrecognizedEnumToken    = "unrecognized_enum_token"
	CodeUnrecognizedBooleanToken = "unrecognized_boolean_token"
	CodeMalformedNumericLiteral  = "malformed_numeric_literal"
	CodeTypeMismatch             = "type_mismatch"
	CodeDuplicateKey             = "duplicate_key"
	CodeParseError               = "parse_error"
	CodeTruncated                = "truncated"
)

// Issue represents a single construction failure or diagnostic.
type Issue struct {
	Path    string // Field path (for example: /pin/2/signal/0/ioModes).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected token sets, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input document (-1 when unknown).
	// Params carries structured parameters (e.g., {"expected":"float64","got":"bool"})
	// for i18n and logging.
	Params map[string]any
}

// Issues is a collection of construction errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_field at /pin/0/foo: unknown field foo
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" && it.Message != it.Code {
			b.WriteString(": ")
			b.WriteString(it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// FirstCode returns the code of the first Issue in err, or "" when err does
// not carry Issues.
func FirstCode(err error) string {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return ""
	}
	return iss[0].Code
}
