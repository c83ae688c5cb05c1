package dsl

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	mcuschema "github.com/reoring/mcuschema"
	js "github.com/reoring/mcuschema/jsonschema"
)

// Converter turns one raw field value (an attribute string, a child Node, or
// a mapping value) into a typed V. Failures are Issues rooted at the field.
type Converter[V any] struct {
	name    string
	convert func(ctx context.Context, raw any) (V, error)
	schema  func() *js.Schema
	// seq marks converters that consume a whole sequence themselves (List).
	seq bool
}

// Convert applies the converter to raw.
func (c Converter[V]) Convert(ctx context.Context, raw any) (V, error) {
	if c.convert == nil {
		var zero V
		return zero, mcuschema.Fail(mcuschema.CodeTypeMismatch, "expected", c.name, "got", "unconfigured converter")
	}
	return c.convert(ctx, raw)
}

// Name describes the produced type in messages.
func (c Converter[V]) Name() string { return c.name }

// JSONSchema returns the schema fragment for values accepted by c.
func (c Converter[V]) JSONSchema() *js.Schema {
	if c.schema == nil {
		return &js.Schema{}
	}
	return c.schema()
}

// String accepts strings and formats scalar mapping values (numbers and
// bools) in their decimal form. Elements, mappings and sequences are rejected.
func String() Converter[string] {
	return Converter[string]{
		name: "string",
		convert: func(_ context.Context, raw any) (string, error) {
			switch v := raw.(type) {
			case string:
				return v, nil
			case json.Number:
				return v.String(), nil
			case bool:
				return strconv.FormatBool(v), nil
			case float32:
				return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
			case float64:
				return strconv.FormatFloat(v, 'f', -1, 64), nil
			}
			if n, ok := asInt64(raw); ok {
				return strconv.FormatInt(n, 10), nil
			}
			if u, ok := raw.(uint64); ok {
				return strconv.FormatUint(u, 10), nil
			}
			return "", mismatch("string", raw)
		},
		schema: func() *js.Schema { return &js.Schema{Type: "string"} },
	}
}

// Bool accepts bool values and boolean tokens (see ParseBool).
func Bool() Converter[bool] {
	return Converter[bool]{
		name: "bool",
		convert: func(_ context.Context, raw any) (bool, error) {
			switch v := raw.(type) {
			case bool:
				return v, nil
			case string:
				return ParseBool(v)
			}
			return false, mismatch("bool", raw)
		},
		schema: func() *js.Schema {
			return &js.Schema{OneOf: []*js.Schema{{Type: "boolean"}, {Type: "string", Enum: append(append([]string{}, TrueTokens...), FalseTokens...)}}}
		},
	}
}

// Int accepts decimal integer literals and Go or JSON numbers without a
// fractional part.
func Int() Converter[int] {
	return Converter[int]{
		name: "int",
		convert: func(_ context.Context, raw any) (int, error) {
			switch v := raw.(type) {
			case string:
				return parseIntLiteral(v)
			case json.Number:
				return parseIntLiteral(v.String())
			case bool:
				return 0, mismatch("int", raw)
			case float32:
				return intFromFloat(float64(v))
			case float64:
				return intFromFloat(v)
			}
			if n, ok := asInt64(raw); ok {
				return int(n), nil
			}
			return 0, mismatch("int", raw)
		},
		schema: func() *js.Schema { return &js.Schema{Type: "integer"} },
	}
}

// Float accepts decimal literals and Go or JSON numbers.
func Float() Converter[float64] {
	return Converter[float64]{
		name: "float64",
		convert: func(_ context.Context, raw any) (float64, error) {
			switch v := raw.(type) {
			case string:
				return parseFloatLiteral(v)
			case json.Number:
				return parseFloatLiteral(v.String())
			case float32:
				return float64(v), nil
			case float64:
				return v, nil
			case bool:
				return 0, mismatch("float64", raw)
			}
			if n, ok := asInt64(raw); ok {
				return float64(n), nil
			}
			return 0, mismatch("float64", raw)
		},
		schema: func() *js.Schema { return &js.Schema{Type: "number"} },
	}
}

// Enum accepts member names after NormalizeEnumToken, and members themselves.
// Members are expected to be declared in normalized form.
func Enum[E ~string](members ...E) Converter[E] {
	var zero E
	name := reflect.TypeOf(zero).Name()
	lookup := make(map[string]E, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		lookup[NormalizeEnumToken(string(m))] = m
		names = append(names, string(m))
	}
	return Converter[E]{
		name: name,
		convert: func(_ context.Context, raw any) (E, error) {
			var token string
			switch v := raw.(type) {
			case E:
				token = string(v)
			case string:
				token = v
			default:
				return zero, mismatch(name, raw)
			}
			if m, ok := lookup[NormalizeEnumToken(token)]; ok {
				return m, nil
			}
			return zero, mcuschema.Issues{withHint(
				mcuschema.RootPath().Issue(mcuschema.CodeUnrecognizedEnumToken, "enum", name, "got", token),
				"one of "+strings.Join(names, ","),
			)}
		},
		schema: func() *js.Schema { return &js.Schema{Type: "string", Enum: names} },
	}
}

// List accepts a comma-separated string, a sequence, or a single element, and
// converts each element with elem. Blank input yields an empty list.
func List[V any](elem Converter[V]) Converter[[]V] {
	name := "[]" + elem.name
	return Converter[[]V]{
		name: name,
		seq:  true,
		convert: func(ctx context.Context, raw any) ([]V, error) {
			var items []any
			switch v := raw.(type) {
			case string:
				if strings.TrimSpace(v) == "" {
					return []V{}, nil
				}
				for _, part := range strings.Split(v, ",") {
					items = append(items, strings.TrimSpace(part))
				}
			case []V:
				return append([]V{}, v...), nil
			default:
				if seq, ok := asSequence(raw); ok {
					items = seq
				} else if _, isNode := raw.(mcuschema.Node); isNode {
					return nil, mismatch(name, raw)
				} else {
					items = []any{raw}
				}
			}
			out := make([]V, 0, len(items))
			for i, it := range items {
				v, err := elem.Convert(ctx, it)
				if err != nil {
					return nil, mcuschema.Rebase(err, mcuschema.RootPath().Index(i).Pointer())
				}
				out = append(out, v)
			}
			return out, nil
		},
		schema: func() *js.Schema {
			return &js.Schema{OneOf: []*js.Schema{js.ArrayOf(elem.JSONSchema()), {Type: "string"}}}
		},
	}
}

// Text applies c to the trimmed character data of a child element. Raw values
// that are not elements (mapping values) go to c unchanged.
func Text[V any](c Converter[V]) Converter[V] {
	return Converter[V]{
		name: c.name,
		convert: func(ctx context.Context, raw any) (V, error) {
			if n, ok := raw.(mcuschema.Node); ok {
				return c.Convert(ctx, strings.TrimSpace(n.Text()))
			}
			return c.Convert(ctx, raw)
		},
		schema: c.schema,
	}
}

// Func wraps a custom conversion function. name describes V in messages.
func Func[V any](name string, fn func(ctx context.Context, raw any) (V, error)) Converter[V] {
	return Converter[V]{name: name, convert: fn}
}

// Nested returns the converter that builds a nested record from a child
// element, a mapping, or an already-typed value.
func Nested[T any](r *Record[T]) Converter[T] {
	return Converter[T]{
		name: r.tag,
		convert: func(ctx context.Context, raw any) (T, error) {
			return r.build(ctx, raw, nil)
		},
		schema: r.JSONSchema,
	}
}

// ---- helpers ----

func mismatch(expected string, raw any) error {
	return mcuschema.Fail(mcuschema.CodeTypeMismatch, "expected", expected, "got", describe(raw))
}

func describe(raw any) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case mcuschema.Node:
		return "element <" + v.TagName() + ">"
	case map[string]any:
		return "mapping"
	case string:
		return "string"
	}
	if _, ok := asSequence(raw); ok {
		return "sequence"
	}
	return fmt.Sprintf("%T", raw)
}

func parseIntLiteral(s string) (int, error) {
	t := strings.TrimSpace(s)
	n, err := strconv.ParseInt(t, 10, 0)
	if err != nil {
		return 0, malformed(s, "int", err)
	}
	return int(n), nil
}

func parseFloatLiteral(s string) (float64, error) {
	t := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, malformed(s, "float64", err)
	}
	return f, nil
}

func intFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, malformed(strconv.FormatFloat(f, 'g', -1, 64), "int", nil)
	}
	return int(f), nil
}

func malformed(literal, kind string, cause error) error {
	it := mcuschema.RootPath().Issue(mcuschema.CodeMalformedNumericLiteral, "got", literal, "expected", kind)
	it.Cause = cause
	return mcuschema.Issues{it}
}

func asInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

// asSequence reports whether v is a slice or array (other than []byte) and
// returns its elements.
func asSequence(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil, string, []byte:
		return nil, false
	case []any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
