package texture

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, p := range Presets() {
		a := p.Image()
		b := Generate(p.Color, p.Aspect, p.Size)
		require.Equal(t, a.Bounds(), b.Bounds(), p.Name)
		assert.Equal(t, a.Pix, b.Pix, "%s sprite differs between runs", p.Name)
	}
}

func TestGenerateShape(t *testing.T) {
	img := Generate(color.NRGBA{255, 180, 50, 255}, 1.0, 1.0)
	require.Equal(t, SpriteSize, img.Bounds().Dx())
	require.Equal(t, SpriteSize, img.Bounds().Dy())

	center := img.RGBAAt(SpriteSize/2, SpriteSize/2)
	assert.Greater(t, center.A, uint8(245), "centre is opaque")

	corner := img.RGBAAt(0, 0)
	assert.Zero(t, corner.A, "corner is transparent")

	edge := img.RGBAAt(SpriteSize/2+70, SpriteSize/2)
	assert.Zero(t, edge.A, "outside radius 64 is transparent")
}

func TestGenerateAspectSquashesHorizontally(t *testing.T) {
	img := WaterPreset.Image()
	c := SpriteSize / 2
	horizontal := img.RGBAAt(c+70, c).A
	vertical := img.RGBAAt(c, c+70).A
	assert.Less(t, horizontal, vertical)
	assert.Greater(t, vertical, uint8(0))
}

func TestGenerateDegenerateInputs(t *testing.T) {
	img := Generate(color.NRGBA{255, 255, 255, 255}, 0, -1)
	require.NotNil(t, img)
	assert.Equal(t, SpriteSize*SpriteSize*4, len(img.Pix))
}

func TestGradientAlpha(t *testing.T) {
	assert.Equal(t, 1.0, GradientAlpha(0))
	assert.InDelta(t, 0.7, GradientAlpha(0.3), 1e-12)
	assert.InDelta(t, 0.5, GradientAlpha(0.5), 1e-12)
	assert.InDelta(t, 0.3, GradientAlpha(0.7), 1e-12)
	assert.Equal(t, 0.0, GradientAlpha(1))
	assert.Equal(t, 0.0, GradientAlpha(3))

	prev := 2.0
	for d := 0.0; d <= 1.2; d += 0.01 {
		a := GradientAlpha(d)
		assert.LessOrEqual(t, a, prev)
		prev = a
	}
}
