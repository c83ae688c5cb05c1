package gojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMappingBytes(t *testing.T) {
	m, err := DecodeMappingBytes([]byte(`{"name":"PA0","position":100,"signal":[{"name":"ADC_IN0"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "PA0", m["name"])
	assert.Equal(t, json.Number("100"), m["position"])
	sig, ok := m["signal"].([]any)
	require.True(t, ok)
	require.Len(t, sig, 1)
	assert.Equal(t, map[string]any{"name": "ADC_IN0"}, sig[0])
}

func TestDecodeMappingBytes_NotObject(t *testing.T) {
	_, err := DecodeMappingBytes([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = DecodeMappingBytes([]byte(`{"name":`))
	assert.Error(t, err)
}

func TestMarshalIndent(t *testing.T) {
	b, err := MarshalIndent(map[string]any{"name": "PA0"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"PA0"}`, string(b))
}

func TestCheckDuplicateKeys(t *testing.T) {
	assert.NoError(t, CheckDuplicateKeys([]byte(`{"a":1,"b":{"a":2},"c":[{"a":1},{"a":2}]}`)))

	err := CheckDuplicateKeys([]byte(`{"a":1,"a":2}`))
	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "/a", dup.Path)

	err = CheckDuplicateKeys([]byte(`{"pin":[{"name":"PA0"},{"Name":"PA1","NAME":"x"}]}`))
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "/pin/1/NAME", dup.Path)
	assert.Equal(t, "NAME", dup.Key)
	assert.Equal(t, "Name", dup.Prev)

	err = CheckDuplicateKeys([]byte(`{"x":{"a/b":{"k":1,"K":2}}}`))
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "/x/a~1b/K", dup.Path)

	assert.Error(t, CheckDuplicateKeys([]byte(`{"a":`)))
}
