package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLoadFromMissingFileWritesDefaults(t *testing.T) {
	captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.toml")

	s, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *s)

	// The defaults landed on disk and load back cleanly.
	_, err = os.Stat(path)
	require.NoError(t, err)
	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, *s, *again)
}

func TestLoadFromRoundTrip(t *testing.T) {
	captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.toml")

	want := Defaults()
	want.Shape = "galaxy"
	want.ColorMode = "rainbow"
	want.PointSize = 5.5
	want.VSync = false
	require.NoError(t, Save(path, &want))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("shape = \"heart\"\n"), 0o644))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "heart", got.Shape)
	assert.Equal(t, Defaults().ColorMode, got.ColorMode)
	assert.Equal(t, Defaults().Width, got.Width)
}

func TestLoadFromWarnsOnUnknownKeys(t *testing.T) {
	buf := captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("sparkle = true\nshape = \"dna\"\n"), 0o644))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "dna", got.Shape)
	assert.Contains(t, buf.String(), "sparkle")
}

func TestLoadFromResetsInvalidValues(t *testing.T) {
	buf := captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
shape = "hypercube"
color_mode = "plaid"
base_color = "red-ish"
point_size = -4.0
opacity = 7.0
scale = 0.0
width = 12
height = 99999
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	d := Defaults()
	assert.Equal(t, d.Shape, got.Shape)
	assert.Equal(t, d.ColorMode, got.ColorMode)
	assert.Equal(t, d.BaseColor, got.BaseColor)
	assert.Equal(t, d.PointSize, got.PointSize)
	assert.Equal(t, d.Opacity, got.Opacity)
	assert.Equal(t, d.Scale, got.Scale)
	assert.Equal(t, d.Width, got.Width)
	assert.Equal(t, d.Height, got.Height)
	assert.Contains(t, buf.String(), "hypercube")
	assert.Contains(t, buf.String(), "opacity")
}

func TestLoadFromGarbageFallsBackToDefaults(t *testing.T) {
	captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("{{{{not toml"), 0o644))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *got)
}
