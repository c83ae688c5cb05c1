package mcuschema_test

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcuschema "github.com/reoring/mcuschema"
	"github.com/reoring/mcuschema/mcu"
)

func TestXMLBytes_Tree(t *testing.T) {
	root, err := mcuschema.XMLBytes([]byte(`<?xml version="1.0"?>
<!-- header -->
<Mcu xmlns="http://mcd.rou.st.com/modules.php?name=mcu" RefName="STM32F030C6Tx">
  <Ram>4</Ram>
  <Pin Name="PA0" Position="10" Type="I/O"><Signal Name="ADC_IN0"/></Pin>
</Mcu>`))
	require.NoError(t, err)
	assert.Equal(t, "Mcu", root.TagName())
	ref, ok := root.Attributes().Get("refname")
	require.True(t, ok)
	assert.Equal(t, "STM32F030C6Tx", ref)
	_, ok = root.Attributes().Get("xmlns")
	assert.True(t, ok)

	kids := slices.Collect(root.Children())
	require.Len(t, kids, 2)
	assert.Equal(t, "4", kids[0].Text())
	assert.Equal(t, "Pin", kids[1].TagName())
	assert.Equal(t, "", strings.TrimSpace(kids[1].Text()))
	assert.Len(t, slices.Collect(kids[1].Children()), 1)
	assert.GreaterOrEqual(t, root.Offset(), int64(0))
}

func TestXMLBytes_DuplicateAttribute(t *testing.T) {
	doc := []byte(`<Pin Name="a" NAME="b"/>`)

	_, err := mcuschema.XMLBytes(doc)
	iss, ok := mcuschema.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, mcuschema.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/Pin/NAME", iss[0].Path)

	for _, sev := range []mcuschema.Severity{mcuschema.Warn, mcuschema.Ignore} {
		el, err := mcuschema.XMLBytes(doc, mcuschema.DocumentOpt{OnDuplicateAttr: sev})
		require.NoError(t, err)
		v, _ := el.Attributes().Get("name")
		assert.Equal(t, "b", v)
		assert.Equal(t, 2, el.Attributes().Len())
	}
}

func TestXMLBytes_Limits(t *testing.T) {
	_, err := mcuschema.XMLBytes([]byte(`<a><b><c/></b></a>`), mcuschema.DocumentOpt{MaxDepth: 2})
	iss, ok := mcuschema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, mcuschema.CodeParseError, iss[0].Code)
	assert.Equal(t, "/a/b/0/c/0", iss[0].Path)

	_, err = mcuschema.XMLBytes([]byte(`<a><b><c/></b></a>`), mcuschema.DocumentOpt{MaxDepth: 3})
	assert.NoError(t, err)

	_, err = mcuschema.XMLBytes([]byte(`<a><b>0123456789</b></a>`), mcuschema.DocumentOpt{MaxBytes: 8})
	assert.Equal(t, mcuschema.CodeTruncated, mcuschema.FirstCode(err))
}

func TestXMLBytes_Malformed(t *testing.T) {
	for _, doc := range []string{`<a><b></a>`, `<a>`, ``, `just text`} {
		_, err := mcuschema.XMLBytes([]byte(doc))
		require.Error(t, err, doc)
		assert.Equal(t, mcuschema.CodeParseError, mcuschema.FirstCode(err), doc)
	}
}

func TestJSONMapping(t *testing.T) {
	m, err := mcuschema.JSONMapping([]byte(`{"name":"PA0","signal":[{"name":"ADC_IN0"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "PA0", m["name"])

	_, err = mcuschema.JSONMapping([]byte(`{"a":1,"A":2}`))
	iss, ok := mcuschema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, mcuschema.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/A", iss[0].Path)
	assert.Contains(t, iss[0].Message, "key 'A' duplicates 'a'")

	_, err = mcuschema.JSONMapping([]byte(`[1]`))
	assert.Equal(t, mcuschema.CodeParseError, mcuschema.FirstCode(err))
}

func TestYAMLMapping(t *testing.T) {
	m, err := mcuschema.YAMLMapping([]byte("name: PA0\nsignal:\n  - name: ADC_IN0\n"))
	require.NoError(t, err)
	assert.Equal(t, "PA0", m["name"])
	assert.Len(t, m["signal"], 1)

	_, err = mcuschema.YAMLMapping([]byte("- a\n- b\n"))
	assert.Equal(t, mcuschema.CodeParseError, mcuschema.FirstCode(err))
}

func TestReadMappingFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	m, err := mcuschema.ReadMappingFile(write("pin.yml", "name: PA0\n"))
	require.NoError(t, err)
	assert.Equal(t, "PA0", m["name"])

	m, err = mcuschema.ReadMappingFile(write("pin.JSON", `{"name":"PA1"}`))
	require.NoError(t, err)
	assert.Equal(t, "PA1", m["name"])

	_, err = mcuschema.ReadMappingFile(write("pin.toml", `name = "PA0"`))
	assert.ErrorIs(t, err, mcuschema.ErrUnsupportedFormat)

	_, err = mcuschema.ReadMappingFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type warnings []string

func (w *warnings) Debug(string, ...any) {}
func (w *warnings) Warn(msg string, kv ...any) {
	*w = append(*w, fmt.Sprint(append([]any{msg}, kv...)...))
}

func TestXMLBytes_DuplicateAttributeWarning(t *testing.T) {
	var w warnings
	_, err := mcuschema.XMLBytes([]byte(`<Mcu><Pin Name="a" NAME="b"/></Mcu>`),
		mcuschema.DocumentOpt{OnDuplicateAttr: mcuschema.Warn, Logger: &w})
	require.NoError(t, err)
	require.Len(t, w, 1)
	assert.Contains(t, w[0], "/Mcu/Pin/0/NAME")

	el, err := mcuschema.XMLBytes([]byte(`<Pin Name="PA0" NAME="PA1" Type="I/O"/>`),
		mcuschema.DocumentOpt{OnDuplicateAttr: mcuschema.Warn, Logger: &w})
	require.NoError(t, err)
	ctx := mcuschema.WithOptions(t.Context(), mcuschema.BuildOpt{Mode: mcuschema.ModePermissive, Logger: &w})
	pin, err := mcu.ParsePin(ctx, el)
	require.NoError(t, err)
	assert.Equal(t, "PA1", pin.Name.OrZero())
	assert.Equal(t, mcu.PinIO, pin.Type.OrZero())

	_, err = mcu.ParsePin(t.Context(), el)
	assert.Equal(t, mcuschema.CodeDuplicateKey, mcuschema.FirstCode(err))

	w = nil
	_, err = mcuschema.XMLBytes([]byte(`<Pin Name="a" NAME="b"/>`),
		mcuschema.DocumentOpt{OnDuplicateAttr: mcuschema.Ignore, Logger: &w})
	require.NoError(t, err)
	assert.Empty(t, w)
}
