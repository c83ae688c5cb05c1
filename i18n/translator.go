package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "got" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "tag_name_mismatch":
			msg = "タグ名が一致しません（期待値 {expected}、実際 {got}）"
		case "unknown_field":
			msg = "未知のフィールドです: {field}"
		case "missing_field":
			msg = "必須フィールドが不足しています: {field}"
		case "unrecognized_enum_token":
			msg = "列挙値を認識できません: {got}"
		case "unrecognized_boolean_token":
			msg = "真偽値を認識できません: {got}"
		case "malformed_numeric_literal":
			msg = "数値の形式が不正です: {got}"
		case "type_mismatch":
			msg = "型が一致しません（期待値 {expected}、実際 {got}）"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "parse_error":
			msg = "解析エラー"
		case "truncated":
			msg = "打ち切られました"
		}
	default: // "en"
		switch code {
		case "tag_name_mismatch":
			msg = "expected tag {expected}, got {got}"
		case "unknown_field":
			msg = "unknown field {field}"
		case "missing_field":
			msg = "required field {field} missing"
		case "unrecognized_enum_token":
			msg = "unrecognized enum token {got}"
		case "unrecognized_boolean_token":
			msg = "unrecognized boolean token {got}"
		case "malformed_numeric_literal":
			msg = "malformed numeric literal {got}"
		case "type_mismatch":
			msg = "expected {expected}, got {got}"
		case "duplicate_key":
			msg = "duplicate key"
		case "parse_error":
			msg = "parse error"
		case "truncated":
			msg = "truncated"
		}
	}
	if msg == "" {
		return code
	}
	return expand(msg, data)
}

// expand substitutes {name} placeholders; unknown placeholders render as "?".
func expand(msg string, data map[string]string) string {
	if !strings.Contains(msg, "{") {
		return msg
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(msg, '{')
		if i < 0 {
			b.WriteString(msg)
			return b.String()
		}
		j := strings.IndexByte(msg[i:], '}')
		if j < 0 {
			b.WriteString(msg)
			return b.String()
		}
		b.WriteString(msg[:i])
		if v, ok := data[msg[i+1:i+j]]; ok {
			b.WriteString(v)
		} else {
			b.WriteString("?")
		}
		msg = msg[i+j+1:]
	}
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
