package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paint.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width = 800
height = 600
enable_persistence = false
brush_radius = 8.0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.False(t, cfg.EnablePersistence)
	assert.Equal(t, 8.0, cfg.BrushRadius)
	assert.Equal(t, "PAINT", cfg.Title)
	assert.Equal(t, "saves", cfg.SavesDir)
	assert.True(t, cfg.AutoDetectResolution)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, `colour = "red"`))
	assert.Error(t, err)
}

func TestLoadRejectsBadSize(t *testing.T) {
	_, err := Load(writeConfig(t, `width = 0`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

const xrandrOutput = `Screen 0: minimum 320 x 200, current 2560 x 1440, maximum 16384 x 16384
DP-1 connected primary 2560x1440+0+0 (normal left inverted right x axis y axis) 597mm x 336mm
   2560x1440     59.95*+
`

func TestParseXrandr(t *testing.T) {
	w, h, err := ParseXrandr([]byte(xrandrOutput))
	require.NoError(t, err)
	assert.Equal(t, 2560, w)
	assert.Equal(t, 1440, h)

	_, _, err = ParseXrandr([]byte("Can't open display"))
	assert.Error(t, err)
}

func TestDetectResolution(t *testing.T) {
	cfg := Default()
	cfg.DetectResolution(context.Background(), func(context.Context, string, ...string) ([]byte, error) {
		return []byte(xrandrOutput), nil
	})
	assert.Equal(t, 2560, cfg.Width)
	assert.Equal(t, 1440, cfg.Height)
}

func TestDetectResolutionFallback(t *testing.T) {
	cfg := Default()
	cfg.DetectResolution(context.Background(), func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exec: \"xrandr\": executable file not found in $PATH")
	})
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
}
