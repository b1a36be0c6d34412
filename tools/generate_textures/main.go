// generate_textures writes the built-in particle sprites as PNG files.
// Edited copies can be loaded back with firewater -textures <dir>.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/1siamBot/firewater/engine/core"
	"github.com/1siamBot/firewater/engine/texture"
	"golang.org/x/image/draw"
)

func main() {
	out := flag.String("out", filepath.Join("assets", "textures"), "output directory")
	sheet := flag.Bool("sheet", true, "also write a side-by-side preview.png")
	flag.Parse()

	logger := core.NewDefaultLogger("textures", false)
	if err := run(*out, *sheet, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(dir string, sheet bool, logger core.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	presets := texture.Presets()
	images := make([]image.Image, len(presets))
	for i, p := range presets {
		img := p.Image()
		images[i] = img
		path := filepath.Join(dir, p.Name+".png")
		if err := savePNG(path, img); err != nil {
			return err
		}
		logger.Infof("  -> %s", path)
	}

	if sheet {
		path := filepath.Join(dir, "preview.png")
		if err := savePNG(path, contactSheet(images)); err != nil {
			return err
		}
		logger.Infof("  -> %s", path)
	}
	return nil
}

// contactSheet lays sprites left to right
func contactSheet(images []image.Image) *image.RGBA {
	size := texture.SpriteSize
	dst := image.NewRGBA(image.Rect(0, 0, size*len(images), size))
	for i, img := range images {
		r := image.Rect(i*size, 0, (i+1)*size, size)
		draw.Copy(dst, r.Min, img, img.Bounds(), draw.Over, nil)
	}
	return dst
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
