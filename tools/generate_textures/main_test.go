package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/1siamBot/firewater/engine/core"
	"github.com/1siamBot/firewater/engine/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesPresets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(dir, true, core.NopLogger{}))

	for _, p := range texture.Presets() {
		f, err := os.Open(filepath.Join(dir, p.Name+".png"))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, texture.SpriteSize, img.Bounds().Dx())
	}

	f, err := os.Open(filepath.Join(dir, "preview.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, texture.SpriteSize*len(texture.Presets()), cfg.Width)
}
