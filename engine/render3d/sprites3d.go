package render3d

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/1siamBot/firewater/engine/texture"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteAtlas holds the particle textures by pool name
type SpriteAtlas struct {
	sprites map[string]*ebiten.Image
	sources map[string]string // name -> "generated" or file path
}

// NewSpriteAtlas creates an empty atlas
func NewSpriteAtlas() *SpriteAtlas {
	return &SpriteAtlas{
		sprites: make(map[string]*ebiten.Image),
		sources: make(map[string]string),
	}
}

// LoadPresets generates a sprite for every preset
func (sa *SpriteAtlas) LoadPresets(presets []texture.Preset) {
	for _, p := range presets {
		sa.sprites[p.Name] = ebiten.NewImageFromImage(p.Image())
		sa.sources[p.Name] = "generated"
	}
}

// LoadFromDirectory replaces generated sprites with <name>.png files
// found in dir. Missing files are not an error; unreadable ones are.
func (sa *SpriteAtlas) LoadFromDirectory(dir string, names []string) (int, error) {
	loaded := 0
	for _, name := range names {
		path := filepath.Join(dir, name+".png")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := loadImage(path)
		if err != nil {
			return loaded, fmt.Errorf("sprite %s: %w", name, err)
		}
		sa.sprites[name] = ebiten.NewImageFromImage(img)
		sa.sources[name] = path
		loaded++
	}
	return loaded, nil
}

// Get returns a sprite by name, or nil
func (sa *SpriteAtlas) Get(name string) *ebiten.Image {
	return sa.sprites[name]
}

// Source reports where a sprite came from
func (sa *SpriteAtlas) Source(name string) string {
	return sa.sources[name]
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
