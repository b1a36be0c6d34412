package fx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var hudBackground = color.RGBA{0, 0, 0, 140}

// HUDText formats the overlay lines
func (e *Effect) HUDText(fps float64) string {
	sound := "on"
	switch {
	case e.Audio == nil:
		sound = "n/a"
	case e.Audio.Muted:
		sound = "off"
	}
	return fmt.Sprintf(
		"FPS: %.0f | Frame: %d | t=%.1fs\n"+
			"Mode: %s | p=%.2f\n"+
			"fire %.2f  smoke %.2f  water %.2f  light %.2f\n"+
			"[Click/Space] Toggle [H] HUD [M] Sound: %s [Esc] Quit",
		fps, e.Sim.Frame, e.Sim.Time,
		e.Sim.Mode, e.Sim.TransitionTime,
		e.Sim.FireOpacity, e.Sim.SmokeOpacity, e.Sim.WaterOpacity, e.Sim.LightIntensity,
		sound,
	)
}

// DrawHUD prints the overlay in the top-left corner
func (e *Effect) DrawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, 380, 68, hudBackground, false)
	ebitenutil.DebugPrint(screen, e.HUDText(ebiten.ActualFPS()))
}
