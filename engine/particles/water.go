package particles

import "math"

const (
	WaterCount = 1000

	// WaterFloor is the height below which a raindrop respawns at the top
	WaterFloor = -1.0

	WaterMinSize = 0.2
	WaterMaxSize = 1.8
)

// waterTint is the blue-dominant base color scaled by brightness
var waterTint = [3]float64{0.1, 0.5, 0.9}

// Water is the rain pool: drops fall under accumulating gravity with a
// little damped wind and stretch as they speed up.
type Water struct {
	*Pool
	rng Rand
}

// NewWater creates a rain pool with drops spread above the scene
func NewWater(count int, rng Rand) *Water {
	w := &Water{Pool: NewPool(count), rng: rng}
	for i := 0; i < count; i++ {
		w.setPosition(i, spread(rng, 5), between(rng, 3, 9), spread(rng, 5))
		w.setColor(i, 0.1, between(rng, 0.5, 0.8), between(rng, 0.8, 1.0))
		w.Sizes[i] = between(rng, 0.3, 0.9)
		w.setVelocity(i, spread(rng, 0.05), -between(rng, 0.1, 0.25), spread(rng, 0.05))
	}
	return w
}

// Update advances the rain by dt seconds
func (w *Water) Update(dt, now float64) {
	k := frames(dt)
	rng := w.rng
	for i := 0; i < w.Count; i++ {
		w.integrate(i, k)

		// gravity accumulates, so drops accelerate
		w.Velocities[i*3+1] -= 0.002 * k

		// wind
		w.Velocities[i*3] = w.Velocities[i*3]*0.99 + spread(rng, 0.001)
		w.Velocities[i*3+2] = w.Velocities[i*3+2]*0.99 + spread(rng, 0.001)

		speed := math.Abs(w.Velocities[i*3+1])
		w.Sizes[i] = clamp(0.3+speed*8, WaterMinSize, WaterMaxSize)

		brightness := clamp(0.6+speed*2, 0.6, 1.0)
		w.setColor(i, waterTint[0]*brightness, waterTint[1]*brightness, waterTint[2]*brightness)

		if w.Positions[i*3+1] < WaterFloor {
			w.recycle(i)
		}
	}
}

func (w *Water) recycle(i int) {
	rng := w.rng
	w.setPosition(i, spread(rng, 5), between(rng, 3, 9), spread(rng, 5))
	w.Sizes[i] = between(rng, 0.2, 0.6)
	w.setVelocity(i, spread(rng, 0.03), -between(rng, 0.15, 0.4), spread(rng, 0.03))
}
