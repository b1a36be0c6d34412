package particles

import "math"

const (
	SmokeCount = 600

	// SmokeCeiling is where smoke has fully faded and is recycled
	SmokeCeiling = 6.0

	SmokeMaxSize = 2.0
)

// Smoke is the smoke pool: slow rising puffs that drift, grow and fade
// with height.
type Smoke struct {
	*Pool
	rng Rand
}

// NewSmoke creates a smoke pool
func NewSmoke(count int, rng Rand) *Smoke {
	s := &Smoke{Pool: NewPool(count), rng: rng}
	for i := 0; i < count; i++ {
		s.setPosition(i, spread(rng, 4), between(rng, 1, 4), spread(rng, 4))
		s.setColor(i, 0.6, 0.6, 0.6)
		s.Sizes[i] = between(rng, 0.6, 1.8)
		s.setVelocity(i, spread(rng, 0.03), between(rng, 0.01, 0.06), spread(rng, 0.03))
	}
	return s
}

// Update advances the smoke by dt seconds; now drives the drift.
func (s *Smoke) Update(dt, now float64) {
	k := frames(dt)
	rng := s.rng
	phase := now * 0.5
	for i := 0; i < s.Count; i++ {
		s.integrate(i, k)

		s.Positions[i*3] += math.Sin(phase+float64(i)) * 0.01 * k
		s.Positions[i*3+2] += math.Cos(phase+float64(i)) * 0.01 * k

		alpha := clamp(1-s.Positions[i*3+1]/SmokeCeiling, 0, 1)
		s.setColor(i, 0.5*alpha, 0.5*alpha, 0.5*alpha)

		s.Sizes[i] = math.Min(SmokeMaxSize, s.Sizes[i]+0.002*k)

		if s.Positions[i*3+1] > SmokeCeiling || rng.Float64() > 1-RecycleChance {
			s.recycle(i)
		}
	}
}

func (s *Smoke) recycle(i int) {
	rng := s.rng
	s.setPosition(i, spread(rng, 4), between(rng, -0.5, 1.5), spread(rng, 4))
	s.Sizes[i] = between(rng, 0.6, 1.8)
	s.setVelocity(i, spread(rng, 0.03), between(rng, 0.01, 0.06), spread(rng, 0.03))
}
