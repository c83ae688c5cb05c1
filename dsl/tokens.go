package dsl

import (
	"regexp"
	"strings"

	mcuschema "github.com/reoring/mcuschema"
)

// TrueTokens and FalseTokens are the accepted boolean spellings, compared
// case-insensitively.
var (
	TrueTokens  = []string{"true", "yes", "1", "on", "enable", "enabled", "active", "high", "set", "available"}
	FalseTokens = []string{"false", "no", "0", "off", "disable", "disabled", "inactive", "low", "unset", "unavailable"}
)

var boolTokens = func() map[string]bool {
	m := make(map[string]bool, len(TrueTokens)+len(FalseTokens))
	for _, t := range TrueTokens {
		m[t] = true
	}
	for _, t := range FalseTokens {
		m[t] = false
	}
	return m
}()

// ParseBool maps a boolean token to its value. Tokens outside both sets fail
// with unrecognized_boolean_token.
func ParseBool(token string) (bool, error) {
	if v, ok := boolTokens[strings.ToLower(strings.TrimSpace(token))]; ok {
		return v, nil
	}
	return false, mcuschema.Issues{withHint(
		mcuschema.RootPath().Issue(mcuschema.CodeUnrecognizedBooleanToken, "got", token),
		"one of "+strings.Join(TrueTokens, ",")+" or "+strings.Join(FalseTokens, ","),
	)}
}

var nonWord = regexp.MustCompile(`\W+`)

// NormalizeEnumToken strips non-word characters and upper-cases token, so
// "I/O" and "io" both become "IO".
func NormalizeEnumToken(token string) string {
	return strings.ToUpper(nonWord.ReplaceAllString(token, ""))
}

func withHint(it mcuschema.Issue, hint string) mcuschema.Issue {
	it.Hint = hint
	return it
}
