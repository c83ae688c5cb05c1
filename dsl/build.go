package dsl

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	mcuschema "github.com/reoring/mcuschema"
	eng "github.com/reoring/mcuschema/internal/engine"
)

// slot collects the converted values of one declared field in source order.
type slot struct {
	values []any
	// seq is set when the field was given as a sequence or appeared more
	// than once.
	seq bool
}

type assembly struct {
	slots map[int]*slot
	pm    mcuschema.PresenceMap
	base  string
}

func (a *assembly) slot(i int) *slot {
	s, ok := a.slots[i]
	if !ok {
		s = &slot{}
		a.slots[i] = s
	}
	return s
}

func (r *Record[T]) build(ctx context.Context, src any, ignore []string) (T, error) {
	var zero T
	fr, _ := frameFrom(ctx)
	asm := &assembly{slots: map[int]*slot{}, pm: fr.pm, base: fr.base}
	ign := r.ignoreSet(ignore)

	var err error
	switch v := src.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, mismatch(r.tag, src)
		}
		return *v, nil
	case mcuschema.Node:
		err = r.assembleNode(ctx, asm, v, ign)
	case map[string]any:
		err = r.assembleMapping(ctx, asm, v, ign)
	default:
		return zero, mismatch(r.tag, src)
	}
	if err != nil {
		return zero, err
	}
	return r.finish(ctx, asm)
}

func (r *Record[T]) ignoreSet(extra []string) map[string]struct{} {
	if len(extra) == 0 {
		return r.ignore
	}
	out := make(map[string]struct{}, len(r.ignore)+len(extra))
	for k := range r.ignore {
		out[k] = struct{}{}
	}
	for _, n := range extra {
		out[eng.Fold(n)] = struct{}{}
	}
	return out
}

func (r *Record[T]) assembleNode(ctx context.Context, asm *assembly, n mcuschema.Node, ign map[string]struct{}) error {
	if eng.Fold(n.TagName()) != r.key {
		return mcuschema.Fail(mcuschema.CodeTagNameMismatch, "expected", r.tag, "got", n.TagName())
	}
	attrs := n.Attributes()
	last := make(map[string]int, attrs.Len())
	i := 0
	for name := range attrs.All() {
		last[eng.Fold(name)] = i
		i++
	}
	i = -1
	for name, val := range attrs.All() {
		i++
		if j := last[eng.Fold(name)]; j != i {
			// a later attribute folds to the same name and wins
			if err := r.duplicateAttr(ctx, asm, name); err != nil {
				return err
			}
			continue
		}
		if err := r.collect(ctx, asm, name, val, false, ign); err != nil {
			return err
		}
	}
	for child := range n.Children() {
		if err := r.collect(ctx, asm, child.TagName(), child, false, ign); err != nil {
			return err
		}
	}
	return nil
}

// duplicateAttr handles an attribute superseded by a later one with the same
// case-folded name: duplicate_key in strict mode, a warning otherwise.
func (r *Record[T]) duplicateAttr(ctx context.Context, asm *assembly, name string) error {
	opt := mcuschema.OptionsFrom(ctx)
	if opt.Strict() {
		return mcuschema.Issues{mcuschema.RootPath().Field(name).Issue(mcuschema.CodeDuplicateKey, "key", name)}
	}
	opt.Log().Warn("duplicate attribute superseded", "record", r.tag, "field", name, "path", join(asm.base, "/"+name))
	return nil
}

func (r *Record[T]) assembleMapping(ctx context.Context, asm *assembly, m map[string]any, ign map[string]struct{}) error {
	entries, dup := eng.FoldMapping(m)
	if dup != nil {
		it := mcuschema.NewIssue(dup.Path, dup.Code, nil)
		it.Message += ": " + dup.Message
		return mcuschema.Issues{it}
	}
	for _, e := range entries {
		if e.Value == nil {
			// null reads as absent, matching how Optional encodes it.
			continue
		}
		if err := r.collect(ctx, asm, e.Key, e.Value, true, ign); err != nil {
			return err
		}
	}
	return nil
}

// collect converts one source occurrence and appends it to the field's slot.
// Mapping values that are sequences are spread into the slot unless the
// field's converter consumes sequences itself.
func (r *Record[T]) collect(ctx context.Context, asm *assembly, name string, raw any, fromMapping bool, ign map[string]struct{}) error {
	opt := mcuschema.OptionsFrom(ctx)
	key := eng.Fold(name)
	idx, ok := r.byKey[key]
	if !ok {
		if _, skip := ign[key]; skip || isIgnoredNamespace(key, ign) {
			opt.Log().Debug("ignored field", "record", r.tag, "field", name, "path", join(asm.base, "/"+name))
			return nil
		}
		if opt.Strict() {
			return mcuschema.Issues{mcuschema.RootPath().Field(name).Issue(mcuschema.CodeUnknownField, "field", name, "record", r.tag)}
		}
		opt.Log().Warn("unknown field skipped", "record", r.tag, "field", name, "path", join(asm.base, "/"+name))
		return nil
	}
	f := r.fields[idx]
	s := asm.slot(idx)
	fieldPath := mcuschema.RootPath().Field(f.name)

	if fromMapping && !f.seq {
		if items, isSeq := asSequence(raw); isSeq {
			s.seq = true
			for i, it := range items {
				if err := r.convertInto(ctx, asm, f, s, fieldPath.Index(i), it); err != nil {
					return err
				}
			}
			asm.pm.Mark(join(asm.base, fieldPath.Pointer()), mcuschema.PresenceSeen)
			return nil
		}
	}

	p := fieldPath
	if f.many {
		p = fieldPath.Index(len(s.values))
	}
	if len(s.values) > 0 {
		s.seq = true
		asm.pm.Mark(join(asm.base, fieldPath.Pointer()), mcuschema.PresenceRepeated)
	}
	if err := r.convertInto(ctx, asm, f, s, p, raw); err != nil {
		return err
	}
	asm.pm.Mark(join(asm.base, fieldPath.Pointer()), mcuschema.PresenceSeen)
	return nil
}

func (r *Record[T]) convertInto(ctx context.Context, asm *assembly, f Field[T], s *slot, p mcuschema.PathRef, raw any) error {
	cctx := ctx
	if asm.pm != nil {
		cctx = withFrame(ctx, frame{pm: asm.pm, base: join(asm.base, p.Pointer())})
	}
	v, err := f.convert(cctx, raw)
	if err != nil {
		return mcuschema.Rebase(err, p.Pointer())
	}
	s.values = append(s.values, v)
	return nil
}

// finish checks the assembled slots against the table and writes them into a
// fresh T. Nothing is written unless every check passes.
func (r *Record[T]) finish(ctx context.Context, asm *assembly) (T, error) {
	var out T
	opt := mcuschema.OptionsFrom(ctx)
	for i, f := range r.fields {
		s, ok := asm.slots[i]
		if !ok {
			path := join(asm.base, mcuschema.RootPath().Field(f.name).Pointer())
			asm.pm.Mark(path, mcuschema.PresenceMissing)
			switch {
			case f.required && opt.Strict():
				return out, mcuschema.Issues{mcuschema.RootPath().Field(f.name).Issue(mcuschema.CodeMissingField, "field", f.name, "record", r.tag)}
			case f.required:
				opt.Log().Warn("required field missing", "record", r.tag, "field", f.name, "path", path)
			default:
				opt.Log().Debug("field missing", "record", r.tag, "field", f.name, "path", path)
			}
			continue
		}
		if !f.many && (s.seq || len(s.values) != 1) {
			return out, mcuschema.Issues{mcuschema.RootPath().Field(f.name).Issue(mcuschema.CodeTypeMismatch,
				"expected", f.kind, "got", fmt.Sprintf("sequence of %d", len(s.values)))}
		}
		for j, v := range s.values {
			if !assignable(f.typ, v) {
				p := mcuschema.RootPath().Field(f.name)
				if f.many {
					p = p.Index(j)
				}
				return out, mcuschema.Issues{p.Issue(mcuschema.CodeTypeMismatch, "expected", f.kind, "got", fmt.Sprintf("%T", v))}
			}
		}
	}
	for i, f := range r.fields {
		if s, ok := asm.slots[i]; ok {
			f.assign(&out, s.values)
		}
	}
	return out, nil
}

// isIgnoredNamespace reports whether key is a prefixed namespace declaration
// ("xmlns:xsi") while plain "xmlns" is ignored.
func isIgnoredNamespace(key string, ign map[string]struct{}) bool {
	if !strings.HasPrefix(key, "xmlns:") {
		return false
	}
	_, ok := ign["xmlns"]
	return ok
}

func assignable(t reflect.Type, v any) bool {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map:
			return true
		}
		return false
	}
	return reflect.TypeOf(v).AssignableTo(t)
}

func join(base, rel string) string {
	if rel == "/" {
		if base == "" {
			return "/"
		}
		return base
	}
	return base + rel
}
