package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// AudioManager plays the fire and rain ambience. Each bed's volume tracks
// the visual opacity of its pool.
type AudioManager struct {
	MasterVolume float64
	FireVolume   float64
	RainVolume   float64
	Muted        bool

	mu          sync.Mutex
	fire        *effects.Volume
	rain        *effects.Volume
	mixer       *beep.Mixer
	fireLevel   float64
	rainLevel   float64
	initialized bool
}

// NewAudioManager builds the ambience graph. Nothing plays until Init.
func NewAudioManager(seed int64) *AudioManager {
	am := &AudioManager{
		MasterVolume: 0.8,
		FireVolume:   0.7,
		RainVolume:   0.5,
		mixer:        &beep.Mixer{},
	}
	am.fire = &effects.Volume{Streamer: NewCrackle(sampleRate, seed), Base: 2, Silent: true}
	am.rain = &effects.Volume{Streamer: NewRainHiss(seed + 1), Base: 2, Silent: true}
	am.mixer.Add(am.fire, am.rain)
	return am
}

// Init opens the audio device and starts playback
func (am *AudioManager) Init() error {
	if am.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(am.mixer)
	am.initialized = true
	return nil
}

// Close stops playback
func (am *AudioManager) Close() {
	if !am.initialized {
		return
	}
	speaker.Clear()
	am.initialized = false
}

// SetLevels sets the fire and rain bed levels (0-1), normally the fire
// and water opacities.
func (am *AudioManager) SetLevels(fire, rain float64) {
	am.fireLevel = fire
	am.rainLevel = rain
	am.apply()
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.MasterVolume = v
	am.apply()
}

// ToggleMute flips the mute switch and returns the new state
func (am *AudioManager) ToggleMute() bool {
	am.Muted = !am.Muted
	am.apply()
	return am.Muted
}

// Stream pulls mixed samples directly; used when no device is open
func (am *AudioManager) Stream(samples [][2]float64) (int, bool) {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.mixer.Stream(samples)
}

func (am *AudioManager) apply() {
	master := am.MasterVolume
	if am.Muted {
		master = 0
	}
	set := func() {
		applyVolume(am.fire, am.fireLevel*am.FireVolume*master)
		applyVolume(am.rain, am.rainLevel*am.RainVolume*master)
	}

	am.mu.Lock()
	defer am.mu.Unlock()
	if am.initialized {
		speaker.Lock()
		set()
		speaker.Unlock()
		return
	}
	set()
}
