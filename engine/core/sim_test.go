package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame60 = 1.0 / 60

func TestFireModeMonotonic(t *testing.T) {
	s := NewSimContext()
	require.Equal(t, ModeFire, s.Mode)

	prevFire, prevWater := -1.0, 2.0
	var fireFullAt, waterGoneAt float64 = -1, -1
	for i := 0; i < 200; i++ {
		s.Advance(frame60)
		assert.GreaterOrEqual(t, s.FireOpacity, prevFire, "fire opacity decreased at frame %d", i)
		assert.LessOrEqual(t, s.WaterOpacity, prevWater, "water opacity increased at frame %d", i)
		prevFire, prevWater = s.FireOpacity, s.WaterOpacity

		if fireFullAt < 0 && s.FireOpacity == 1 {
			fireFullAt = s.TransitionTime
		}
		if waterGoneAt < 0 && s.WaterOpacity == 0 {
			waterGoneAt = s.TransitionTime
		}
		if s.TransitionTime >= 1 {
			assert.Equal(t, 1.0, s.FireOpacity)
		}
		if s.TransitionTime >= 0.5 {
			assert.Equal(t, 0.0, s.WaterOpacity)
		}
	}
	assert.GreaterOrEqual(t, fireFullAt, 1.0)
	assert.GreaterOrEqual(t, waterGoneAt, 0.5)
	assert.Equal(t, MaxLightIntensity, s.LightIntensity)
	assert.Equal(t, 0.0, s.SmokeOpacity)
}

func TestWaterModeRamps(t *testing.T) {
	s := NewSimContext()
	s.Toggle()
	require.Equal(t, ModeWater, s.Mode)

	for i := 0; i < 300; i++ {
		s.Advance(frame60)
		assert.GreaterOrEqual(t, s.WaterOpacity, 0.0)
		assert.LessOrEqual(t, s.WaterOpacity, 1.0)
		assert.LessOrEqual(t, s.SmokeOpacity, WaterSmokeOpacity)
		assert.GreaterOrEqual(t, s.LightIntensity, 0.0)
		assert.LessOrEqual(t, s.LightIntensity, MaxLightIntensity)
	}
	assert.Equal(t, 1.0, s.WaterOpacity)
	assert.Equal(t, 0.0, s.FireOpacity)
	assert.Equal(t, WaterSmokeOpacity, s.SmokeOpacity)
	assert.Equal(t, 0.0, s.LightIntensity)
}

func TestTransitionTakesAboutOneHundredFrames(t *testing.T) {
	s := NewSimContext()
	for i := 0; i < 99; i++ {
		s.Advance(frame60)
	}
	assert.Less(t, s.FireOpacity, 1.0)
	s.Advance(frame60)
	s.Advance(frame60)
	assert.Equal(t, 1.0, s.FireOpacity)
}

func TestDoubleToggleRestoresMode(t *testing.T) {
	s := NewSimContext()
	for i := 0; i < 30; i++ {
		s.Advance(frame60)
	}
	require.NotZero(t, s.TransitionTime)

	s.Toggle()
	s.Toggle()
	assert.Equal(t, ModeFire, s.Mode)
	assert.Zero(t, s.TransitionTime)

	s.Toggle()
	s.Toggle()
	s.Toggle()
	assert.Equal(t, ModeWater, s.Mode)
	assert.Zero(t, s.TransitionTime)
}

func TestActivePools(t *testing.T) {
	s := NewSimContext()
	assert.True(t, s.FireActive())
	assert.False(t, s.WaterActive())
	assert.False(t, s.SmokeActive())

	s.Advance(frame60)
	s.Toggle()
	// fire is still visible while fading
	assert.True(t, s.FireActive())
	assert.True(t, s.WaterActive())
	assert.True(t, s.SmokeActive())

	for i := 0; i < 200; i++ {
		s.Advance(frame60)
	}
	assert.False(t, s.FireActive())

	s.Toggle()
	s.Advance(frame60)
	assert.True(t, s.WaterActive(), "water keeps running while it fades out")
	for i := 0; i < 200; i++ {
		s.Advance(frame60)
	}
	assert.False(t, s.WaterActive())
	assert.False(t, s.SmokeActive())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "fire", ModeFire.String())
	assert.Equal(t, "water", ModeWater.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
