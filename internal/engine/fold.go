package engine

import (
	"sort"
	"strings"
)

// DuplicateStrictness controls duplicate key handling in detection helpers.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// Fold returns the canonical lookup form of a field, attribute or tag name.
func Fold(name string) string { return strings.ToLower(name) }

// firstFoldedDuplicate reports the first attribute whose folded name was
// already used by an earlier attribute of the same element.
func firstFoldedDuplicate(attrs []Attr) (string, bool) {
	if len(attrs) < 2 {
		return "", false
	}
	seen := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		k := Fold(a.Name)
		if _, ok := seen[k]; ok {
			return a.Name, true
		}
		seen[k] = struct{}{}
	}
	return "", false
}

// Entry is one key of a flat mapping together with its folded form.
type Entry struct {
	Key    string
	Folded string
	Value  any
}

// FoldMapping returns the entries of m ordered by original key. Keys that
// collide after folding produce a duplicate_key issue naming the later key
// in that order; the returned entries are nil in that case.
func FoldMapping(m map[string]any) ([]Entry, *SimpleIssue) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Entry, 0, len(keys))
	seen := make(map[string]string, len(keys))
	for _, k := range keys {
		f := Fold(k)
		if prev, ok := seen[f]; ok {
			return nil, &SimpleIssue{Code: "duplicate_key", Path: "/" + escapeToken(k), Message: "key '" + k + "' duplicates '" + prev + "'"}
		}
		seen[f] = k
		out = append(out, Entry{Key: k, Folded: f, Value: m[k]})
	}
	return out, nil
}
