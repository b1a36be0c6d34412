package core

// Mode is the visual state the effect is transitioning towards
type Mode uint8

const (
	ModeFire Mode = iota
	ModeWater
)

func (m Mode) String() string {
	switch m {
	case ModeFire:
		return "fire"
	case ModeWater:
		return "water"
	}
	return "unknown"
}

const (
	// TransitionRate is the progress gained per 1/60 s frame
	TransitionRate = 0.01

	// MaxLightIntensity is the fire light's intensity once fully lit
	MaxLightIntensity = 2.0

	// WaterSmokeOpacity is where smoke settles in water mode
	WaterSmokeOpacity = 0.8
)

// SimContext is the mutable state shared by one frame's update: the
// transition state machine plus the values it derives.
type SimContext struct {
	Mode           Mode
	TransitionTime float64

	FireOpacity    float64
	WaterOpacity   float64
	SmokeOpacity   float64
	LightIntensity float64

	// Time is seconds since the effect started, uncapped
	Time  float64
	Frame uint64
}

// NewSimContext starts in fire mode with nothing visible yet
func NewSimContext() *SimContext {
	return &SimContext{Mode: ModeFire}
}

// Toggle switches mode and restarts the crossfade
func (s *SimContext) Toggle() {
	if s.Mode == ModeFire {
		s.Mode = ModeWater
	} else {
		s.Mode = ModeFire
	}
	s.TransitionTime = 0
}

// Advance moves the crossfade forward by dt seconds and recomputes the
// opacities and light intensity.
func (s *SimContext) Advance(dt float64) {
	s.TransitionTime += TransitionRate * dt * 60
	p := s.TransitionTime

	switch s.Mode {
	case ModeFire:
		s.LightIntensity = min(MaxLightIntensity, p*2)
		s.FireOpacity = min(1, p)
		s.WaterOpacity = max(0, 1-p*2)
		s.SmokeOpacity = max(0, 1-p)
	case ModeWater:
		s.WaterOpacity = min(1, p)
		s.FireOpacity = max(0, 1-p*2)
		s.SmokeOpacity = min(WaterSmokeOpacity, p)
		s.LightIntensity = max(0, MaxLightIntensity-p*2)
	}
}

// FireActive reports whether the fire pool needs simulating this frame.
// A pool keeps running while it fades out.
func (s *SimContext) FireActive() bool {
	return s.Mode == ModeFire || s.FireOpacity > 0
}

// WaterActive reports whether the rain pool needs simulating this frame
func (s *SimContext) WaterActive() bool {
	return s.Mode == ModeWater || s.WaterOpacity > 0
}

// SmokeActive reports whether the smoke pool needs simulating this frame
func (s *SimContext) SmokeActive() bool {
	return s.Mode == ModeWater || s.SmokeOpacity > 0
}
