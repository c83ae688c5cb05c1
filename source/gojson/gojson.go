// Package gojson decodes flat mapping documents and encodes records using
// github.com/goccy/go-json.
package gojson

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"
)

// ErrNotObject is returned when the document root is not a JSON object.
var ErrNotObject = errors.New("gojson: document root is not an object")

// DecodeMapping reads one JSON object from r. Numbers decode as json.Number
// so integer fields do not pass through float64.
func DecodeMapping(r io.Reader) (map[string]any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return m, nil
}

// DecodeMappingBytes is DecodeMapping over a byte slice.
func DecodeMappingBytes(b []byte) (map[string]any, error) {
	return DecodeMapping(bytes.NewReader(b))
}

// MarshalIndent encodes v as indented JSON.
func MarshalIndent(v any) ([]byte, error) { return j.MarshalIndent(v, "", "  ") }

// Marshal encodes v as compact JSON.
func Marshal(v any) ([]byte, error) { return j.Marshal(v) }
