package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PointLight is an omni light with range falloff
type PointLight struct {
	Position  mgl64.Vec3
	Color     Color3
	Intensity float64
	Distance  float64 // 0 means unlimited range
	Decay     float64
}

// AmbientLight provides fill lighting
type AmbientLight struct {
	Color     Color3
	Intensity float64
}

// LightingSetup contains the scene lighting
type LightingSetup struct {
	Ambient AmbientLight
	Fire    PointLight
}

// DefaultLighting is a dim room lit by an orange fire light in front of
// the pedestal.
func DefaultLighting() LightingSetup {
	return LightingSetup{
		Ambient: AmbientLight{
			Color:     Hex(0x202020),
			Intensity: 1,
		},
		Fire: PointLight{
			Position:  V3(0, 0, 2),
			Color:     Hex(0xff7700),
			Intensity: 1.5,
			Distance:  10,
			Decay:     1.5,
		},
	}
}

// Attenuation returns the light's falloff factor at distance d
func (l *PointLight) Attenuation(d float64) float64 {
	if l.Distance <= 0 {
		return 1
	}
	f := 1 - d/l.Distance
	if f <= 0 {
		return 0
	}
	return math.Pow(f, l.Decay)
}

// ComputeLighting calculates the lit color of a surface point
func (ls *LightingSetup) ComputeLighting(pos, normal mgl64.Vec3, baseColor Color3) Color3 {
	ambient := baseColor.Mul(ls.Ambient.Color).Scale(ls.Ambient.Intensity)

	toLight := ls.Fire.Position.Sub(pos)
	d := toLight.Len()
	ndotl := math.Max(0, normal.Dot(normalize(toLight)))
	diffuse := baseColor.Mul(ls.Fire.Color).Scale(ndotl * ls.Fire.Intensity * ls.Fire.Attenuation(d))

	result := ambient.Add(diffuse)
	result.R = math.Min(result.R, 1.0)
	result.G = math.Min(result.G, 1.0)
	result.B = math.Min(result.B, 1.0)
	return result
}
