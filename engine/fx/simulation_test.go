package fx

import (
	"math"
	"testing"
	"time"

	"github.com/1siamBot/firewater/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedConfig() Config {
	cfg := DefaultConfig()
	cfg.FixedStep = 1.0 / 60
	return cfg
}

func stepN(s *Simulation, n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func TestStepCapsStall(t *testing.T) {
	now := time.Unix(500, 0)
	s := NewSimulation(DefaultConfig())
	s.Clock.Now = func() time.Time { return now }

	s.Step()
	assert.Zero(t, s.LastStep)

	now = now.Add(5 * time.Second)
	s.Step()
	assert.Equal(t, core.MaxFrameDelta, s.LastStep)
	assert.InDelta(t, 5.0, s.Sim.Time, 1e-9)
	assert.InDelta(t, core.TransitionRate*core.MaxFrameDelta*60, s.Sim.TransitionTime, 1e-9)
}

func TestToggleLandsOnNextStep(t *testing.T) {
	s := NewSimulation(fixedConfig())
	stepN(s, 10)

	s.Toggle()
	assert.Equal(t, core.ModeFire, s.Sim.Mode)
	s.Step()
	assert.Equal(t, core.ModeWater, s.Sim.Mode)
	assert.InDelta(t, core.TransitionRate, s.Sim.TransitionTime, 1e-9)
}

func TestFadedPoolsAreFrozen(t *testing.T) {
	s := NewSimulation(fixedConfig())
	stepN(s, 200)

	assert.True(t, s.Ran.Fire)
	assert.False(t, s.Ran.Water)
	assert.False(t, s.Ran.Smoke)

	water := append([]float64(nil), s.Water.Positions...)
	smoke := append([]float64(nil), s.Smoke.Positions...)
	fire := append([]float64(nil), s.Fire.Positions...)
	s.Step()
	assert.Equal(t, water, s.Water.Positions)
	assert.Equal(t, smoke, s.Smoke.Positions)
	assert.NotEqual(t, fire, s.Fire.Positions)
}

func TestWaterModeRunsRainAndSmoke(t *testing.T) {
	s := NewSimulation(fixedConfig())
	stepN(s, 200)
	s.Toggle()

	s.Step()
	assert.True(t, s.Ran.Water)
	assert.True(t, s.Ran.Smoke)
	assert.True(t, s.Ran.Fire, "fire keeps running while it fades")

	stepN(s, 120)
	assert.False(t, s.Ran.Fire)
	assert.Zero(t, s.Sim.FireOpacity)
	assert.Equal(t, 1.0, s.Sim.WaterOpacity)
	assert.Equal(t, core.WaterSmokeOpacity, s.Sim.SmokeOpacity)
	assert.Zero(t, s.Sim.LightIntensity)
}

func TestStartupFadesRainIntoFire(t *testing.T) {
	s := NewSimulation(fixedConfig())
	s.Step()
	assert.Equal(t, core.ModeFire, s.Sim.Mode)
	assert.InDelta(t, 0.98, s.Sim.WaterOpacity, 1e-9)
	assert.InDelta(t, 0.99, s.Sim.SmokeOpacity, 1e-9)

	stepN(s, 150)
	assert.Equal(t, 1.0, s.Sim.FireOpacity)
	assert.Zero(t, s.Sim.WaterOpacity)
	assert.Zero(t, s.Sim.SmokeOpacity)
	assert.Equal(t, core.MaxLightIntensity, s.Sim.LightIntensity)
}

func TestCameraOrbitsWithTime(t *testing.T) {
	s := NewSimulation(fixedConfig())
	stepN(s, 90)

	tm := s.Sim.Time
	require.InDelta(t, 1.5, tm, 1e-9)
	assert.InDelta(t, math.Sin(0.3*tm)*5, s.Camera.Eye.X(), 1e-9)
	assert.InDelta(t, math.Cos(0.3*tm)*5, s.Camera.Eye.Z(), 1e-9)
	assert.Zero(t, s.Camera.Eye.Y())
}

func TestResizeEvent(t *testing.T) {
	s := NewSimulation(fixedConfig())
	s.Events.Emit(core.Event{Type: core.EvtResize, Payload: core.ResizePayload{Width: 800, Height: 600}})
	s.Step()
	assert.Equal(t, 800, s.Camera.ScreenW)
	assert.Equal(t, 600, s.Camera.ScreenH)
}

func TestSameSeedSameAnimation(t *testing.T) {
	a := NewSimulation(fixedConfig())
	b := NewSimulation(fixedConfig())
	for i := 0; i < 300; i++ {
		if i == 120 {
			a.Toggle()
			b.Toggle()
		}
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Fire.Positions, b.Fire.Positions)
	assert.Equal(t, a.Water.Positions, b.Water.Positions)
	assert.Equal(t, a.Smoke.Sizes, b.Smoke.Sizes)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.ScreenWidth = 0
	cfg.WaterCount = -1
	cfg.FixedStep = -0.5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen size")
	assert.Contains(t, err.Error(), "water count")
	assert.Contains(t, err.Error(), "fixed step")

	cfg = DefaultConfig()
	cfg.RecordPath = "a.fwr"
	cfg.ReplayPath = "a.fwr"
	assert.Error(t, cfg.Validate())
}
