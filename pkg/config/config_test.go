package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadValidFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raytracer.toml")
	contents := `
[render]
width = 800
aspect_ratio = 1.5
samples = 500
max_depth = 10
scene = "cornell_box"
output = "out.ppm"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Render.Width)
	assert.Equal(t, 1.5, cfg.Render.AspectRatio)
	assert.Equal(t, 500, cfg.Render.Samples)
	assert.Equal(t, 10, cfg.Render.MaxDepth)
	assert.Equal(t, "cornell_box", cfg.Render.Scene)
	assert.Equal(t, "out.ppm", cfg.Render.Output)
}

func TestLoadMalformedFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is not [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
