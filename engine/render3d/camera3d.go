package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitCamera is a perspective camera circling the origin at a fixed
// radius and always looking at it.
type OrbitCamera struct {
	// Vertical field of view in degrees
	Fov        float64
	Near, Far  float64
	Radius     float64
	OrbitSpeed float64 // radians per second

	// Screen dimensions
	ScreenW, ScreenH int

	Eye    mgl64.Vec3
	Target mgl64.Vec3

	// Computed matrices
	view     mgl64.Mat4
	proj     mgl64.Mat4
	viewProj mgl64.Mat4
	dirty    bool
}

// NewOrbitCamera creates the camera at its starting point on the orbit
func NewOrbitCamera(screenW, screenH int) *OrbitCamera {
	c := &OrbitCamera{
		Fov:        75,
		Near:       0.1,
		Far:        1000,
		Radius:     5,
		OrbitSpeed: 0.3, // one lap every ~21 s
		ScreenW:    screenW,
		ScreenH:    screenH,
		dirty:      true,
	}
	c.Orbit(0)
	return c
}

// Orbit places the camera at its orbit position for time t (seconds)
func (c *OrbitCamera) Orbit(t float64) {
	a := t * c.OrbitSpeed
	c.Eye = mgl64.Vec3{math.Sin(a) * c.Radius, 0, math.Cos(a) * c.Radius}
	c.Target = mgl64.Vec3{}
	c.dirty = true
}

// SetViewport updates the aspect ratio after a resize
func (c *OrbitCamera) SetViewport(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if w == c.ScreenW && h == c.ScreenH {
		return
	}
	c.ScreenW, c.ScreenH = w, h
	c.dirty = true
}

// Aspect returns width / height
func (c *OrbitCamera) Aspect() float64 {
	if c.ScreenH == 0 {
		return 1
	}
	return float64(c.ScreenW) / float64(c.ScreenH)
}

func (c *OrbitCamera) update() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.view = mgl64.LookAtV(c.Eye, c.Target, mgl64.Vec3{0, 1, 0})
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect(), c.Near, c.Far)
	c.viewProj = c.proj.Mul4(c.view)
}

// ViewProj returns the combined view-projection matrix
func (c *OrbitCamera) ViewProj() mgl64.Mat4 {
	c.update()
	return c.viewProj
}

// Project converts a world point to screen pixels. depth is the distance
// along the view axis; ok is false for points behind the near plane.
func (c *OrbitCamera) Project(p mgl64.Vec3) (sx, sy, depth float64, ok bool) {
	c.update()
	clip, w := TransformPoint(c.viewProj, p)
	if w < c.Near {
		return 0, 0, w, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	sx = (ndcX*0.5 + 0.5) * float64(c.ScreenW)
	sy = (1 - (ndcY*0.5 + 0.5)) * float64(c.ScreenH)
	return sx, sy, w, true
}

// PointScale converts a world-space point size at the given depth into
// pixels, matching size attenuation of perspective point sprites.
func (c *OrbitCamera) PointScale(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return float64(c.ScreenH) * 0.5 / depth
}
