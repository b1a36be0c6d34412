package particles

import "math"

const (
	FireCount = 800

	// FireCeiling is the height above which a flame particle is recycled
	FireCeiling = 3.0
)

// FlameOrigin is the point brightness and size attenuate away from
var FlameOrigin = [3]float64{0, -1, 0}

// Fire is the flame pool: particles rise from the pedestal, flicker,
// sway and dim as they leave the origin.
type Fire struct {
	*Pool
	rng Rand
}

// NewFire creates a flame pool with randomized initial state
func NewFire(count int, rng Rand) *Fire {
	f := &Fire{Pool: NewPool(count), rng: rng}
	for i := 0; i < count; i++ {
		f.setPosition(i, spread(rng, 2.5), rng.Float64()*2.5-1.5, spread(rng, 2.5))
		f.setColor(i, between(rng, 0.7, 1.0), rng.Float64()*0.5, rng.Float64()*0.1)
		f.Sizes[i] = between(rng, 0.4, 1.2)
		f.setVelocity(i, spread(rng, 0.05), between(rng, 0.02, 0.12), spread(rng, 0.05))
	}
	return f
}

// DistanceFactor attenuates flame brightness, size and blur with distance
// from FlameOrigin. It never drops below 0.2.
func DistanceFactor(d float64) float64 {
	return math.Max(0.2, 1.2-d/4.0)
}

// Update advances the flame by dt seconds; now is the global time in
// seconds and drives the sway.
func (f *Fire) Update(dt, now float64) {
	k := frames(dt)
	rng := f.rng
	for i := 0; i < f.Count; i++ {
		f.integrate(i, k)

		// flicker and buoyancy
		f.Velocities[i*3] += spread(rng, 0.003)
		f.Velocities[i*3+2] += spread(rng, 0.003)
		f.Velocities[i*3+1] += 0.0005

		// sway, phase-shifted by index
		f.Positions[i*3] += math.Sin(now+float64(i)) * 0.01 * k

		x, y, z := f.Position(i)
		dx, dy, dz := x-FlameOrigin[0], y-FlameOrigin[1], z-FlameOrigin[2]
		df := DistanceFactor(math.Sqrt(dx*dx + dy*dy + dz*dz))

		// brighter towards the tip
		brightness := clamp((y/3+0.5)*df, 0, 1)
		f.Colors[i*3] = brightness
		f.Colors[i*3+1] = brightness * 0.7

		size := math.Max(0.2, df*0.8) + rng.Float64()*0.2*df
		// faster particles are drawn larger to fake motion blur
		f.Sizes[i] = size * (1 + f.speed(i)*3*df)

		if y > FireCeiling || rng.Float64() > 1-RecycleChance {
			f.recycle(i)
		}
	}
}

func (f *Fire) recycle(i int) {
	rng := f.rng
	f.setPosition(i, spread(rng, 1.8), between(rng, -1.5, -1.0), spread(rng, 1.8))
	f.Sizes[i] = between(rng, 0.4, 1.2)
	f.setVelocity(i, spread(rng, 0.03), between(rng, 0.05, 0.2), spread(rng, 0.03))
}
