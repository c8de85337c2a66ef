package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TDUI_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TDUI_CONFIG", "")
	t.Setenv("TDUI_WINDOW_WIDTH", "1024")
	t.Setenv("TDUI_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[window]\ntitle = \"Docs\"\n\n[font]\nfamily = \"Noto Sans\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("TDUI_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Docs", cfg.Window.Title)
	assert.Equal(t, "Noto Sans", cfg.Font.Family)
	assert.Equal(t, 800, cfg.Window.Width)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("TDUI_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.Window.Title = " "
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.Log.Level = "chatty"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	assert.NoError(t, Default().Validate())
}
