package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// V3 is shorthand for an mgl64 vector
func V3(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

// TransformPoint multiplies a point (w=1) by m and returns the result
// before the perspective divide along with w.
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) (mgl64.Vec3, float64) {
	r := m.Mul4x1(p.Vec4(1))
	return r.Vec3(), r.W()
}

// TransformDir transforms a direction (w=0)
func TransformDir(m mgl64.Mat4, d mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// normalize returns the zero vector for near-zero input instead of NaNs
func normalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() < 1e-10 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// Color3 is a linear RGB color
type Color3 struct {
	R, G, B float64
}

// Hex converts 0xRRGGBB to a Color3
func Hex(c uint32) Color3 {
	return Color3{
		float64(c>>16&0xff) / 255,
		float64(c>>8&0xff) / 255,
		float64(c&0xff) / 255,
	}
}

func (c Color3) Scale(s float64) Color3 {
	return Color3{c.R * s, c.G * s, c.B * s}
}

func (c Color3) Add(o Color3) Color3 {
	return Color3{
		math.Min(c.R+o.R, 1),
		math.Min(c.G+o.G, 1),
		math.Min(c.B+o.B, 1),
	}
}

func (c Color3) Mul(o Color3) Color3 {
	return Color3{c.R * o.R, c.G * o.G, c.B * o.B}
}
