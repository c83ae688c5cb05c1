package mcuschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	eng "github.com/reoring/mcuschema/internal/engine"
	"github.com/reoring/mcuschema/source/gojson"
	xmlsrc "github.com/reoring/mcuschema/source/xml"
	yamlsrc "github.com/reoring/mcuschema/source/yaml"
)

// ReadXML parses one XML document from r and returns its root element. Limits
// from the last opts value are enforced while reading. Failures are Issues.
func ReadXML(r io.Reader, opts ...DocumentOpt) (*Element, error) {
	var opt DocumentOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.OnDuplicateAttr),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
	}
	if opt.OnDuplicateAttr == Warn && opt.Logger != nil {
		eo.IssueSink = func(si eng.SimpleIssue) {
			opt.Logger.Warn("duplicate attribute", "path", si.Path)
		}
	}
	src := eng.WrapWithEnforcement(xmlsrc.NewReader(r), eo)
	root, err := eng.DecodeTree(src)
	if err != nil {
		return nil, toIssues(err)
	}
	return elementFromEngine(root), nil
}

// XMLBytes parses an XML document held in memory.
func XMLBytes(b []byte, opts ...DocumentOpt) (*Element, error) {
	return ReadXML(bytes.NewReader(b), opts...)
}

// ReadXMLFile opens path and parses it as an XML document.
func ReadXMLFile(path string, opts ...DocumentOpt) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadXML(f, opts...)
}

// JSONMapping decodes a JSON object into a Mapping. Keys repeated within one
// object, compared case-insensitively, fail with duplicate_key.
func JSONMapping(b []byte) (Mapping, error) {
	if err := gojson.CheckDuplicateKeys(b); err != nil {
		var dup *gojson.DuplicateKeyError
		if errors.As(err, &dup) {
			it := NewIssue(dup.Path, CodeDuplicateKey, map[string]any{"key": dup.Key})
			it.Message += ": key '" + dup.Key + "' duplicates '" + dup.Prev + "'"
			it.Cause = err
			return nil, Issues{it}
		}
		return nil, toIssues(err)
	}
	m, err := gojson.DecodeMappingBytes(b)
	if err != nil {
		return nil, toIssues(err)
	}
	return m, nil
}

// YAMLMapping decodes a YAML mapping document into a Mapping.
func YAMLMapping(b []byte) (Mapping, error) {
	m, err := yamlsrc.DecodeMappingBytes(b)
	if err != nil {
		return nil, toIssues(err)
	}
	return m, nil
}

// ErrUnsupportedFormat is returned for mapping files with an unknown extension.
var ErrUnsupportedFormat = errors.New("mcuschema: unsupported mapping format")

// ReadMappingFile decodes a mapping document, choosing the decoder by file
// extension (.json, .yaml, .yml).
func ReadMappingFile(path string) (Mapping, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONMapping(b)
	case ".yaml", ".yml":
		return YAMLMapping(b)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Ignore:
		return eng.DupIgnore
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupError
	}
}
