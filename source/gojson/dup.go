package gojson

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// DuplicateKeyError reports an object key that repeats within one object,
// compared case-insensitively. Path is the JSON Pointer of the later key.
type DuplicateKeyError struct {
	Path string
	Key  string
	Prev string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q at %s (first seen as %q)", e.Key, e.Path, e.Prev)
}

type dupFrame struct {
	object       bool
	keys         map[string]string
	expectingKey bool
	key          string
	index        int
}

// CheckDuplicateKeys tokenizes data and returns a *DuplicateKeyError for the
// first object key that repeats. Decoding into a map would silently keep the
// last value, so this runs before DecodeMapping.
func CheckDuplicateKeys(data []byte) error {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []dupFrame

	valueDone := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.object {
				top.expectingKey = true
			} else {
				top.index++
			}
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		}
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{object: true, keys: map[string]string{}, expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{})
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectingKey {
				top := &stack[n-1]
				folded := strings.ToLower(v)
				if prev, dup := top.keys[folded]; dup {
					return &DuplicateKeyError{Path: pointer(stack[:n-1]) + "/" + escape(v), Key: v, Prev: prev}
				}
				top.keys[folded] = v
				top.key = v
				top.expectingKey = false
				continue
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

// pointer renders the path of the value currently open in each frame.
func pointer(frames []dupFrame) string {
	var b strings.Builder
	for _, f := range frames {
		b.WriteByte('/')
		if f.object {
			b.WriteString(escape(f.key))
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
