// Package fx wires the particle pools, transition controller, camera and
// renderer into the per-frame effect driver.
package fx

import (
	"errors"
	"fmt"

	"github.com/1siamBot/firewater/engine/particles"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Config holds everything the effect can be tuned with at startup
type Config struct {
	ScreenWidth  int
	ScreenHeight int

	FireCount  int
	SmokeCount int
	WaterCount int

	// Seed feeds every random source; the same seed and fixed step give
	// the same animation.
	Seed int64
	// FixedStep replaces wall-clock frame timing when > 0 (seconds)
	FixedStep float64

	Mute       bool
	ShowHUD    bool
	Debug      bool
	TextureDir string
	RecordPath string
	ReplayPath string
}

// DefaultConfig returns the stock effect settings
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		FireCount:    particles.FireCount,
		SmokeCount:   particles.SmokeCount,
		WaterCount:   particles.WaterCount,
		Seed:         1,
		ShowHUD:      true,
	}
}

// Validate reports every invalid field at once
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight))
	}
	for name, n := range map[string]int{"fire": c.FireCount, "smoke": c.SmokeCount, "water": c.WaterCount} {
		if n < 0 {
			errs = append(errs, fmt.Errorf("%s count %d is negative", name, n))
		}
	}
	if c.FixedStep < 0 {
		errs = append(errs, fmt.Errorf("fixed step %v is negative", c.FixedStep))
	}
	if c.RecordPath != "" && c.RecordPath == c.ReplayPath {
		errs = append(errs, errors.New("cannot record over the replay being played"))
	}
	return errors.Join(errs...)
}
