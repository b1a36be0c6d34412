// Package texture generates the soft point-sprite images particles are
// drawn with.
package texture

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SpriteSize is the edge length of every generated sprite
const SpriteSize = 256

// baseRadius is the gradient radius in pixels at size 1
const baseRadius = 64.0

// minScale keeps degenerate aspect/size inputs drawable
const minScale = 0.01

// Preset describes one pool's sprite
type Preset struct {
	Name   string
	Color  color.NRGBA
	Aspect float64 // horizontal squash, < 1 is tall and thin
	Size   float64
}

var (
	FirePreset  = Preset{Name: "fire", Color: color.NRGBA{255, 180, 50, 255}, Aspect: 1.0, Size: 1.5}
	WaterPreset = Preset{Name: "water", Color: color.NRGBA{50, 150, 255, 255}, Aspect: 0.6, Size: 2.0}
	SmokePreset = Preset{Name: "smoke", Color: color.NRGBA{200, 200, 200, 255}, Aspect: 1.0, Size: 2.5}
)

// Presets lists the built-in sprites in draw order
func Presets() []Preset {
	return []Preset{FirePreset, SmokePreset, WaterPreset}
}

// Image renders the preset
func (p Preset) Image() *image.RGBA {
	return Generate(p.Color, p.Aspect, p.Size)
}

// gradientStops are (offset, alpha) pairs; alpha is linear between them
// and zero past the last stop.
var gradientStops = [][2]float64{
	{0, 1.0},
	{0.3, 0.7},
	{0.7, 0.3},
	{1.0, 0},
}

// GradientAlpha returns the sprite's alpha at normalized distance d from
// the centre.
func GradientAlpha(d float64) float64 {
	if d <= 0 {
		return gradientStops[0][1]
	}
	for i := 1; i < len(gradientStops); i++ {
		s0, s1 := gradientStops[i-1], gradientStops[i]
		if d <= s1[0] {
			t := (d - s0[0]) / (s1[0] - s0[0])
			return s0[1] + (s1[1]-s0[1])*t
		}
	}
	return 0
}

// Generate draws a SpriteSize square radial gradient of color c, opaque at
// the centre and transparent at radius 64*size, then squashes it
// horizontally by aspect. The result only depends on the arguments.
func Generate(c color.NRGBA, aspect, size float64) *image.RGBA {
	if aspect < minScale {
		aspect = minScale
	}
	if size < minScale {
		size = minScale
	}

	bounds := image.Rect(0, 0, SpriteSize, SpriteSize)
	src := image.NewRGBA(bounds)
	center := SpriteSize / 2.0
	radius := baseRadius * size

	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			a := GradientAlpha(math.Hypot(dx, dy)/radius) * float64(c.A)
			src.Set(x, y, color.NRGBA{c.R, c.G, c.B, uint8(math.Round(a))})
		}
	}

	if aspect == 1 {
		return src
	}

	// src -> dst: x' = aspect*x + center*(1-aspect), y' = y
	dst := image.NewRGBA(bounds)
	m := f64.Aff3{
		aspect, 0, center * (1 - aspect),
		0, 1, 0,
	}
	xdraw.BiLinear.Transform(dst, m, src, src.Bounds(), xdraw.Src, nil)
	return dst
}
