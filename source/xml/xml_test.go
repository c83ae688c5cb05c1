package xml

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eng "github.com/reoring/mcuschema/internal/engine"
)

const doc = `<?xml version="1.0" encoding="UTF-8"?>
<!-- header -->
<Mcu xmlns="http://mcd.rou.st.com/modules.php?name=mcu" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" RefName="STM32F030C6Tx">
	<Ram>4</Ram>
</Mcu>`

func TestXMLSource_Tokens(t *testing.T) {
	src := NewBytes([]byte(doc))

	var kinds []eng.Kind
	var startTok eng.Token
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if tok.Kind == eng.KindStartElement && tok.Name == "Mcu" {
			startTok = tok
		}
		kinds = append(kinds, tok.Kind)
	}

	require.NotEmpty(t, kinds)
	assert.Equal(t, "Mcu", startTok.Name)
	names := make([]string, 0, len(startTok.Attrs))
	for _, a := range startTok.Attrs {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"xmlns", "xmlns:xsi", "RefName"}, names)
	assert.GreaterOrEqual(t, src.Location(), int64(0))
}

func TestXMLSource_DecodeTree(t *testing.T) {
	root, err := eng.DecodeTree(NewBytes([]byte(doc)))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "Ram", root.Children[0].Name)
	assert.Equal(t, []string{"4"}, root.Children[0].Text)
}

func TestXMLSource_Malformed(t *testing.T) {
	_, err := eng.DecodeTree(NewBytes([]byte(`<Mcu><Pin></Mcu>`)))
	require.Error(t, err)
}
