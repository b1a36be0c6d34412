package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrackleInRange(t *testing.T) {
	s := NewCrackle(sampleRate, 1)
	samples := make([][2]float64, 4096)
	n, ok := s.Stream(samples)
	require.True(t, ok)
	require.Equal(t, len(samples), n)

	nonZero := 0
	for i := 0; i < n; i++ {
		require.GreaterOrEqual(t, samples[i][0], -1.0)
		require.LessOrEqual(t, samples[i][0], 1.0)
		if samples[i][0] != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 0)
	assert.NoError(t, s.Err())
}

func TestRainHissInRange(t *testing.T) {
	s := NewRainHiss(2)
	samples := make([][2]float64, 4096)
	n, ok := s.Stream(samples)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		require.GreaterOrEqual(t, samples[i][1], -1.0)
		require.LessOrEqual(t, samples[i][1], 1.0)
	}
}

func TestSilentAtZeroLevel(t *testing.T) {
	am := NewAudioManager(7)
	am.SetLevels(0, 0)

	samples := make([][2]float64, 1024)
	n, _ := am.Stream(samples)
	require.Equal(t, len(samples), n)
	for i := 0; i < n; i++ {
		require.Zero(t, samples[i][0])
		require.Zero(t, samples[i][1])
	}
}

func TestLevelsFollowOpacity(t *testing.T) {
	am := NewAudioManager(7)
	am.SetLevels(1, 0)
	assert.False(t, am.fire.Silent)
	assert.True(t, am.rain.Silent)

	loud := am.fire.Volume
	am.SetLevels(0.25, 0)
	assert.Less(t, am.fire.Volume, loud)

	am.SetLevels(0, 1)
	assert.True(t, am.fire.Silent)
	assert.False(t, am.rain.Silent)
}

func TestMuteAndVolume(t *testing.T) {
	am := NewAudioManager(7)
	am.SetLevels(1, 1)

	assert.True(t, am.ToggleMute())
	assert.True(t, am.fire.Silent)
	assert.True(t, am.rain.Silent)

	assert.False(t, am.ToggleMute())
	assert.False(t, am.fire.Silent)

	am.SetVolume(3)
	assert.Equal(t, 1.0, am.MasterVolume)
	am.SetVolume(-1)
	assert.Equal(t, 0.0, am.MasterVolume)
	assert.True(t, am.fire.Silent)
}
