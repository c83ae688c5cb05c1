package mcuschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcuschema "github.com/reoring/mcuschema"
)

func TestOptional(t *testing.T) {
	some := mcuschema.Some(48)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 48, v)
	assert.Equal(t, 48, some.Or(0))
	assert.Equal(t, "48", some.String())
	assert.False(t, some.IsZero())

	none := mcuschema.None[int]()
	assert.False(t, none.IsSet())
	assert.Equal(t, 7, none.Or(7))
	assert.Equal(t, 0, none.OrZero())
	assert.Equal(t, "<none>", none.String())
	assert.True(t, none.IsZero())
}

func TestOptional_Marshal(t *testing.T) {
	b, err := mcuschema.Some("STM32F0").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"STM32F0"`, string(b))

	b, err = mcuschema.None[string]().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	y, err := mcuschema.Some(3.6).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, 3.6, y)
	y, err = mcuschema.None[float64]().MarshalYAML()
	require.NoError(t, err)
	assert.Nil(t, y)
}

func TestPresenceMap(t *testing.T) {
	pm := mcuschema.PresenceMap{}
	pm.Mark("/pin", mcuschema.PresenceSeen)
	pm.Mark("/pin", mcuschema.PresenceRepeated)
	pm.Mark("/pin/0/name", mcuschema.PresenceSeen)
	pm.Mark("/ram", mcuschema.PresenceMissing)

	assert.True(t, pm.Has("/pin", mcuschema.PresenceSeen|mcuschema.PresenceRepeated))
	assert.False(t, pm.Has("/ram", mcuschema.PresenceSeen))
	assert.Equal(t, []string{"/pin", "/pin/0/name"}, pm.Paths(mcuschema.PresenceSeen, "/"))
	assert.Equal(t, []string{"/pin/0/name"}, pm.Paths(mcuschema.PresenceSeen, "/pin/0"))
	assert.Empty(t, pm.Paths(mcuschema.PresenceSeen, "/pi"))

	var nilMap mcuschema.PresenceMap
	assert.NotPanics(t, func() { nilMap.Mark("/x", mcuschema.PresenceSeen) })
}

func TestBuildOptions(t *testing.T) {
	ctx := t.Context()
	assert.True(t, mcuschema.OptionsFrom(ctx).Strict())
	assert.NotNil(t, mcuschema.OptionsFrom(ctx).Log())

	ctx = mcuschema.WithMode(ctx, mcuschema.ModePermissive)
	opt := mcuschema.OptionsFrom(ctx)
	assert.False(t, opt.Strict())
	assert.Equal(t, "permissive", opt.Mode.String())
}
