package fx

import (
	"fmt"

	"github.com/1siamBot/firewater/engine/audio"
	"github.com/1siamBot/firewater/engine/core"
	"github.com/1siamBot/firewater/engine/render3d"
	"github.com/1siamBot/firewater/engine/texture"
	"github.com/hajimehoshi/ebiten/v2"
)

// Effect is the render driver: it steps the simulation once per display
// refresh, pushes the transition into materials, light and audio, and
// draws the scene.
type Effect struct {
	*Simulation

	Renderer *render3d.Renderer3D
	Atlas    *render3d.SpriteAtlas
	Audio    *audio.AudioManager

	fireCloud  *render3d.PointCloud
	smokeCloud *render3d.PointCloud
	waterCloud *render3d.PointCloud

	log core.Logger
}

// NewEffect builds the scene. audio may be nil to run silent.
func NewEffect(cfg Config, am *audio.AudioManager, log core.Logger) (*Effect, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	e := &Effect{
		Simulation: NewSimulation(cfg),
		Renderer:   render3d.NewRenderer3D(cfg.ScreenWidth, cfg.ScreenHeight),
		Atlas:      render3d.NewSpriteAtlas(),
		Audio:      am,
		log:        log,
	}
	e.Renderer.Camera = e.Camera

	presets := texture.Presets()
	e.Atlas.LoadPresets(presets)
	if cfg.TextureDir != "" {
		names := make([]string, len(presets))
		for i, p := range presets {
			names[i] = p.Name
		}
		n, err := e.Atlas.LoadFromDirectory(cfg.TextureDir, names)
		if err != nil {
			return nil, fmt.Errorf("textures: %w", err)
		}
		log.Infof("loaded %d sprite overrides from %s", n, cfg.TextureDir)
	}
	for _, p := range presets {
		log.Debugf("sprite %s: %s", p.Name, e.Atlas.Source(p.Name))
	}

	e.Renderer.AddMesh(render3d.MakePedestal())

	e.fireCloud = render3d.NewPointCloud("fire", e.Fire.Pool, render3d.PointMaterial{
		Size:    0.8,
		Texture: e.Atlas.Get(texture.FirePreset.Name),
		Blend:   ebiten.BlendLighter,
	})
	e.smokeCloud = render3d.NewPointCloud("smoke", e.Smoke.Pool, render3d.PointMaterial{
		Size:    1.0,
		Texture: e.Atlas.Get(texture.SmokePreset.Name),
		Blend:   ebiten.BlendSourceOver,
	})
	e.waterCloud = render3d.NewPointCloud("water", e.Water.Pool, render3d.PointMaterial{
		Size:    0.8,
		Texture: e.Atlas.Get(texture.WaterPreset.Name),
		Blend:   ebiten.BlendLighter,
	})
	e.Renderer.AddCloud(e.fireCloud)
	e.Renderer.AddCloud(e.smokeCloud)
	e.Renderer.AddCloud(e.waterCloud)

	e.sync()
	return e, nil
}

// Update advances one frame
func (e *Effect) Update() {
	mode := e.Sim.Mode
	e.Step()
	if e.Sim.Mode != mode {
		e.log.Debugf("frame %d: switching to %s", e.Sim.Frame, e.Sim.Mode)
	}
	e.sync()
}

// sync pushes the transition values into the scene
func (e *Effect) sync() {
	e.fireCloud.Material.Opacity = e.Sim.FireOpacity
	e.smokeCloud.Material.Opacity = e.Sim.SmokeOpacity
	e.waterCloud.Material.Opacity = e.Sim.WaterOpacity
	e.Renderer.Lighting.Fire.Intensity = e.Sim.LightIntensity
	if e.Audio != nil {
		e.Audio.SetLevels(e.Sim.FireOpacity, e.Sim.WaterOpacity)
	}
}

// Draw submits the frame
func (e *Effect) Draw(screen *ebiten.Image) {
	e.Renderer.DrawScene(screen)
}

// Resize queues a viewport change for the next frame
func (e *Effect) Resize(w, h int) {
	if w == e.Camera.ScreenW && h == e.Camera.ScreenH {
		return
	}
	e.Events.Emit(core.Event{
		Type:    core.EvtResize,
		Frame:   e.Sim.Frame,
		Payload: core.ResizePayload{Width: w, Height: h},
	})
}
