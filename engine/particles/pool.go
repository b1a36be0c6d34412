// Package particles holds the fixed-size particle pools and their
// per-frame updaters. Pools are structure-of-arrays: vector fields are
// flat slices of 3*Count floats, scalar fields Count floats.
package particles

import "math"

// RecycleChance is the per-frame probability that a fire or smoke
// particle is recycled regardless of where it is.
const RecycleChance = 0.003

// Rand is the random source a pool draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Pool is a fixed set of particles. Slice lengths never change after
// NewPool; particles are recycled in place instead of being removed.
type Pool struct {
	Count      int
	Positions  []float64 // x,y,z per particle
	Velocities []float64 // units per 1/60 s
	Colors     []float64 // r,g,b in [0,1]
	Sizes      []float64
}

// NewPool allocates a zeroed pool of count particles
func NewPool(count int) *Pool {
	if count < 0 {
		count = 0
	}
	return &Pool{
		Count:      count,
		Positions:  make([]float64, count*3),
		Velocities: make([]float64, count*3),
		Colors:     make([]float64, count*3),
		Sizes:      make([]float64, count),
	}
}

// Position returns particle i's position
func (p *Pool) Position(i int) (x, y, z float64) {
	return p.Positions[i*3], p.Positions[i*3+1], p.Positions[i*3+2]
}

// Color returns particle i's color
func (p *Pool) Color(i int) (r, g, b float64) {
	return p.Colors[i*3], p.Colors[i*3+1], p.Colors[i*3+2]
}

// integrate moves particle i by its velocity scaled by k frames
func (p *Pool) integrate(i int, k float64) {
	p.Positions[i*3] += p.Velocities[i*3] * k
	p.Positions[i*3+1] += p.Velocities[i*3+1] * k
	p.Positions[i*3+2] += p.Velocities[i*3+2] * k
}

func (p *Pool) speed(i int) float64 {
	vx, vy, vz := p.Velocities[i*3], p.Velocities[i*3+1], p.Velocities[i*3+2]
	return math.Sqrt(vx*vx + vy*vy + vz*vz)
}

func (p *Pool) setPosition(i int, x, y, z float64) {
	p.Positions[i*3], p.Positions[i*3+1], p.Positions[i*3+2] = x, y, z
}

func (p *Pool) setVelocity(i int, vx, vy, vz float64) {
	p.Velocities[i*3], p.Velocities[i*3+1], p.Velocities[i*3+2] = vx, vy, vz
}

func (p *Pool) setColor(i int, r, g, b float64) {
	p.Colors[i*3], p.Colors[i*3+1], p.Colors[i*3+2] = r, g, b
}

// spread returns a value uniformly distributed in [-w/2, w/2)
func spread(rng Rand, w float64) float64 {
	return (rng.Float64() - 0.5) * w
}

// between returns a value uniformly distributed in [lo, hi)
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// frames converts a delta time in seconds to 60 Hz frames
func frames(dt float64) float64 {
	return dt * 60
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
