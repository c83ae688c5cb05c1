package mcuschema

import (
	"errors"
	"fmt"

	"github.com/reoring/mcuschema/i18n"
	eng "github.com/reoring/mcuschema/internal/engine"
)

// NewIssue creates an Issue whose message is rendered by the current
// translator from params.
func NewIssue(path, code string, params map[string]any) Issue {
	data := make(map[string]string, len(params))
	for k, v := range params {
		data[k] = fmt.Sprint(v)
	}
	return Issue{Path: path, Code: code, Message: i18n.T(code, data), Params: params, Offset: -1}
}

// Fail returns a single-issue error at the record root.
func Fail(code string, kv ...any) error {
	return Issues{RootPath().Issue(code, kv...)}
}

// Rebase prefixes the path of every Issue in err with base. Errors that are
// not Issues become a parse_error issue at base.
func Rebase(err error, base string) error {
	if err == nil {
		return nil
	}
	if base == "" || base == "/" {
		return toIssues(err)
	}
	iss := toIssues(err)
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: i18n.T(ie.Code, nil) + ": " + ie.Message, Offset: -1, Cause: err})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: -1})
}
