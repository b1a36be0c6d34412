package fx

import (
	"math/rand"

	"github.com/1siamBot/firewater/engine/core"
	"github.com/1siamBot/firewater/engine/particles"
	"github.com/1siamBot/firewater/engine/render3d"
)

// Simulation is everything that changes per frame, without any drawing:
// pools, transition state, clock, camera orbit and the input queue.
type Simulation struct {
	Sim    *core.SimContext
	Clock  *core.FrameClock
	Events *core.EventBus
	Camera *render3d.OrbitCamera

	Fire  *particles.Fire
	Smoke *particles.Smoke
	Water *particles.Water

	// LastStep is the capped delta time used by the latest frame
	LastStep float64
	// Ran records which pools were simulated by the latest frame
	Ran struct{ Fire, Smoke, Water bool }
}

// NewSimulation seeds the pools and hooks input events to the state
func NewSimulation(cfg Config) *Simulation {
	s := &Simulation{
		Sim:    core.NewSimContext(),
		Clock:  core.NewFrameClock(),
		Events: core.NewEventBus(),
		Camera: render3d.NewOrbitCamera(cfg.ScreenWidth, cfg.ScreenHeight),
		Fire:   particles.NewFire(cfg.FireCount, rand.New(rand.NewSource(cfg.Seed))),
		Smoke:  particles.NewSmoke(cfg.SmokeCount, rand.New(rand.NewSource(cfg.Seed+1))),
		Water:  particles.NewWater(cfg.WaterCount, rand.New(rand.NewSource(cfg.Seed+2))),
	}
	s.Clock.Fixed = cfg.FixedStep

	s.Events.On(core.EvtToggle, func(core.Event) {
		s.Sim.Toggle()
	})
	s.Events.On(core.EvtResize, func(e core.Event) {
		if p, ok := e.Payload.(core.ResizePayload); ok {
			s.Camera.SetViewport(p.Width, p.Height)
		}
	})
	return s
}

// Toggle queues a fire/water switch for the next frame
func (s *Simulation) Toggle() {
	s.Events.Emit(core.Event{Type: core.EvtToggle, Frame: s.Sim.Frame})
}

// Step runs one frame of simulation
func (s *Simulation) Step() {
	dt := s.Clock.Tick()
	s.LastStep = dt
	s.Sim.Time = s.Clock.Elapsed

	s.Events.Dispatch()

	now := s.Sim.Time
	s.Ran.Fire = s.Sim.FireActive()
	s.Ran.Smoke = s.Sim.SmokeActive()
	s.Ran.Water = s.Sim.WaterActive()
	if s.Ran.Fire {
		s.Fire.Update(dt, now)
	}
	if s.Ran.Water {
		s.Water.Update(dt, now)
	}
	if s.Ran.Smoke {
		s.Smoke.Update(dt, now)
	}

	s.Sim.Advance(dt)
	s.Camera.Orbit(now)
	s.Sim.Frame++
}
