package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcuschema "github.com/reoring/mcuschema"
	"github.com/reoring/mcuschema/logger"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("3dparty/st-open-pins", "mcu"), cfg.Dir())
	assert.Equal(t, ".xml", cfg.Extension)
	assert.True(t, cfg.Strict)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.Zero(t, cfg.MaxBytes)
	assert.Empty(t, cfg.File)
	assert.Equal(t, mcuschema.ModeStrict, cfg.BuildOpt(nil).Mode)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("data_dir: /opt/pins\nextension: json\nstrict: false\nmax_depth: 8\n"), 0o644))
	t.Setenv("MCUIMPORT_LOG_LEVEL", "debug")
	t.Setenv("MCUIMPORT_MAX_DEPTH", "12")

	cfg, err := Load(New(), file)
	require.NoError(t, err)
	assert.Equal(t, "/opt/pins", cfg.DataDir)
	assert.Equal(t, ".json", cfg.Extension)
	assert.False(t, cfg.Strict)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.Equal(t, file, cfg.File)
	assert.Equal(t, mcuschema.ModePermissive, cfg.BuildOpt(nil).Mode)
	assert.Equal(t, mcuschema.DocumentOpt{MaxDepth: 12, OnDuplicateAttr: mcuschema.Warn}, cfg.DocumentOpt(nil))
}

func TestLoad_SearchPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile("mcuimport.yaml", []byte("subdir: boards\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "boards", cfg.Subdir)
	assert.NotEmpty(t, cfg.File)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("MCUIMPORT_LOG_LEVEL", "chatty")
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	_, err = Load(New(), "")
	assert.Error(t, err)
}
