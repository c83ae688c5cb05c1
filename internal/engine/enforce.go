package engine

import (
	"strconv"
	"strings"
)

// Enforcement wrapper for TokenSource to apply case-folded duplicate attribute
// handling, max depth checks, and max bytes truncation in a streaming fashion.

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink is an optional callback to receive lightweight issues when in collect mode.
	// If nil, issues are not reported unless they are fatal.
	IssueSink func(SimpleIssue)
	// FailFast stops at the first issue encountered, returning an error immediately.
	FailFast bool
}

type frame struct {
	path      string
	nextIndex map[string]int
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// WrapWithEnforcement returns a TokenSource that enforces the duplicate
// attribute policy, maximum nesting depth, and maximum consumed bytes.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	switch tok.Kind {
	case KindStartElement:
		path := e.childPath(tok.Name)
		e.stack = append(e.stack, frame{path: path})
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, e.fatal(SimpleIssue{Code: "parse_error", Path: path, Message: "max depth exceeded"})
		}
		if e.opt.OnDuplicate != DupIgnore {
			if dup, ok := firstFoldedDuplicate(tok.Attrs); ok {
				si := SimpleIssue{Code: "duplicate_key", Path: path + "/" + escapeToken(dup), Message: "attribute '" + dup + "' duplicated"}
				if e.opt.IssueSink != nil {
					e.opt.IssueSink(si)
				}
				if e.opt.OnDuplicate == DupError || e.opt.FailFast {
					return Token{}, IssueError{si}
				}
			}
		}
	case KindEndElement:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off >= 0 && off > e.opt.MaxBytes {
			return Token{}, e.fatal(SimpleIssue{Code: "truncated", Path: e.currentPath(), Message: "max bytes exceeded"})
		}
	}

	return tok, nil
}

func (e *enforcingTokenSource) fatal(si SimpleIssue) error {
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(si)
	}
	return IssueError{si}
}

// childPath renders /Name/index paths where index counts same-named siblings.
func (e *enforcingTokenSource) childPath(name string) string {
	if len(e.stack) == 0 {
		return "/" + escapeToken(name)
	}
	top := &e.stack[len(e.stack)-1]
	if top.nextIndex == nil {
		top.nextIndex = make(map[string]int)
	}
	key := strings.ToLower(name)
	i := top.nextIndex[key]
	top.nextIndex[key] = i + 1
	return top.path + "/" + escapeToken(name) + "/" + strconv.Itoa(i)
}

func (e *enforcingTokenSource) currentPath() string {
	if len(e.stack) == 0 {
		return "/"
	}
	return e.stack[len(e.stack)-1].path
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapeToken(s string) string { return pointerEscaper.Replace(s) }
