// Package yaml decodes flat mapping documents and encodes records using
// gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when the document root is not a YAML mapping.
var ErrNotMapping = errors.New("yaml: document root is not a mapping")

// DecodeMapping reads the first YAML document from r and converts it into a
// JSON-like map[string]any. Non-string keys are dropped.
func DecodeMapping(r io.Reader) (map[string]any, error) {
	dec := yaml.NewDecoder(r)
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNotMapping
		}
		return nil, err
	}
	m := anyToStringMap(node)
	if m == nil {
		return nil, ErrNotMapping
	}
	return m, nil
}

// DecodeMappingBytes is DecodeMapping over a byte slice.
func DecodeMappingBytes(b []byte) (map[string]any, error) {
	return DecodeMapping(bytes.NewReader(b))
}

// Marshal encodes v as a YAML document with two-space indentation.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// anyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func anyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return anyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
