package dsl

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	mcuschema "github.com/reoring/mcuschema"
	eng "github.com/reoring/mcuschema/internal/engine"
	js "github.com/reoring/mcuschema/jsonschema"
)

// Field is one entry of a record schema table: the field name, whether it
// repeats, the converter for its raw values and where the result lands in T.
type Field[T any] struct {
	name     string
	key      string
	many     bool
	required bool
	kind     string
	typ      reflect.Type
	seq      bool
	convert  func(ctx context.Context, raw any) (any, error)
	assign   func(dst *T, vals []any)
	schema   func() *js.Schema
}

// One declares a single-valued field stored in an Optional.
func One[T, V any](name string, c Converter[V], sel func(*T) *mcuschema.Optional[V]) Field[T] {
	return Field[T]{
		name:    name,
		key:     eng.Fold(name),
		kind:    c.name,
		typ:     reflect.TypeFor[V](),
		seq:     c.seq,
		convert: func(ctx context.Context, raw any) (any, error) { return c.Convert(ctx, raw) },
		assign: func(dst *T, vals []any) {
			v, _ := vals[0].(V)
			*sel(dst) = mcuschema.Some(v)
		},
		schema: c.JSONSchema,
	}
}

// Many declares a repeatable field. Values keep source order.
func Many[T, V any](name string, c Converter[V], sel func(*T) *[]V) Field[T] {
	return Field[T]{
		name:    name,
		key:     eng.Fold(name),
		many:    true,
		kind:    c.name,
		typ:     reflect.TypeFor[V](),
		convert: func(ctx context.Context, raw any) (any, error) { return c.Convert(ctx, raw) },
		assign: func(dst *T, vals []any) {
			out := make([]V, len(vals))
			for i, v := range vals {
				out[i], _ = v.(V)
			}
			*sel(dst) = out
		},
		schema: func() *js.Schema { return js.ArrayOf(c.JSONSchema()) },
	}
}

// Required marks the field as mandatory in strict mode.
func (f Field[T]) Required() Field[T] {
	f.required = true
	return f
}

// Name returns the canonical field name.
func (f Field[T]) Name() string { return f.name }

// Repeated reports whether the field was declared with Many.
func (f Field[T]) Repeated() bool { return f.many }

// RecordOf starts a schema table for T whose element tag is tag.
func RecordOf[T any](tag string) *recordBuilder[T] {
	return &recordBuilder[T]{tag: tag}
}

type recordBuilder[T any] struct {
	tag    string
	fields []Field[T]
	ignore []string
}

// Fields appends field declarations in order.
func (b *recordBuilder[T]) Fields(fs ...Field[T]) *recordBuilder[T] {
	b.fields = append(b.fields, fs...)
	return b
}

// Ignore names source fields that are skipped silently on every build.
func (b *recordBuilder[T]) Ignore(names ...string) *recordBuilder[T] {
	b.ignore = append(b.ignore, names...)
	return b
}

// Build validates the table. Field names must be unique case-insensitively.
func (b *recordBuilder[T]) Build() (*Record[T], error) {
	r := &Record[T]{
		tag:    b.tag,
		key:    eng.Fold(b.tag),
		fields: append([]Field[T](nil), b.fields...),
		byKey:  make(map[string]int, len(b.fields)),
		ignore: make(map[string]struct{}, len(b.ignore)),
	}
	if b.tag == "" {
		return nil, fmt.Errorf("dsl: record for %s has no tag", reflect.TypeFor[T]())
	}
	for i, f := range r.fields {
		if f.convert == nil || f.assign == nil {
			return nil, fmt.Errorf("dsl: record %s: field %d is not declared with One or Many", b.tag, i)
		}
		if prev, dup := r.byKey[f.key]; dup {
			return nil, fmt.Errorf("dsl: record %s: field %q duplicates %q", b.tag, f.name, r.fields[prev].name)
		}
		r.byKey[f.key] = i
	}
	for _, n := range b.ignore {
		r.ignore[eng.Fold(n)] = struct{}{}
	}
	return r, nil
}

// MustBuild is Build that panics on an invalid table.
func (b *recordBuilder[T]) MustBuild() *Record[T] {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// Record is a compiled schema table for T.
type Record[T any] struct {
	tag    string
	key    string
	fields []Field[T]
	byKey  map[string]int
	ignore map[string]struct{}
}

// Name returns the element tag the record expects.
func (r *Record[T]) Name() string { return r.tag }

// FieldNames returns the declared field names in table order.
func (r *Record[T]) FieldNames() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.name
	}
	return out
}

// Build constructs a T from src: a Node, a Mapping, or an already-built T or
// *T (returned unchanged). ignore lists extra source field names to skip for
// this call only; nested records do not inherit it.
func (r *Record[T]) Build(ctx context.Context, src any, ignore ...string) (T, error) {
	return r.build(ctx, src, ignore)
}

// BuildWithMeta is Build plus the presence map of every field path seen or
// missing, nested records included.
func (r *Record[T]) BuildWithMeta(ctx context.Context, src any, ignore ...string) (mcuschema.Decoded[T], error) {
	pm := mcuschema.PresenceMap{}
	v, err := r.build(withFrame(ctx, frame{pm: pm}), src, ignore)
	if err != nil {
		return mcuschema.Decoded[T]{}, err
	}
	return mcuschema.Decoded[T]{Value: v, Presence: pm}, nil
}

// JSONSchema projects the table to a JSON Schema object describing the
// mapping form.
func (r *Record[T]) JSONSchema() *js.Schema {
	s := &js.Schema{
		Title:                r.tag,
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(r.fields)),
		AdditionalProperties: false,
	}
	for _, f := range r.fields {
		s.Properties[f.name] = f.schema()
		if f.required {
			s.Required = append(s.Required, f.name)
		}
	}
	sort.Strings(s.Required)
	return s
}
