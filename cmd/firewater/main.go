package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/1siamBot/firewater/engine/audio"
	"github.com/1siamBot/firewater/engine/core"
	"github.com/1siamBot/firewater/engine/fx"
	"github.com/1siamBot/firewater/engine/input"
	"github.com/1siamBot/firewater/engine/record"
	"github.com/hajimehoshi/ebiten/v2"
)

// recordStep is the frame step forced on recorded sessions so that
// their replays land on the same frames and times.
const recordStep = 1.0 / 60

// Game implements ebiten.Game interface
type Game struct {
	effect *fx.Effect
	input  *input.InputState
	log    core.Logger

	recorder *record.Recorder
	replay   *record.Replay

	showHUD bool
}

func NewGame(effect *fx.Effect, showHUD bool, log core.Logger) *Game {
	g := &Game{
		effect:  effect,
		input:   input.NewInputState(),
		log:     log,
		showHUD: showHUD,
	}

	effect.Events.On(core.EvtToggleHUD, func(core.Event) {
		g.showHUD = !g.showHUD
	})
	effect.Events.On(core.EvtToggleMute, func(core.Event) {
		if effect.Audio != nil {
			g.log.Infof("sound muted: %v", effect.Audio.ToggleMute())
		}
	})
	return g
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.QuitRequested {
		return ebiten.Termination
	}

	frame := g.effect.Sim.Frame
	if g.replay != nil {
		for _, cmd := range g.replay.CommandsForFrame(frame) {
			g.effect.Events.Emit(core.Event{Type: cmd.Type, Frame: cmd.Frame})
		}
	} else if g.input.ToggleRequested {
		g.effect.Toggle()
		if g.recorder != nil {
			if err := g.recorder.Record(record.InputCommand{Frame: frame, Type: core.EvtToggle}); err != nil {
				return err
			}
		}
	}
	if g.input.HUDRequested {
		g.effect.Events.Emit(core.Event{Type: core.EvtToggleHUD, Frame: frame})
	}
	if g.input.MuteRequested {
		g.effect.Events.Emit(core.Event{Type: core.EvtToggleMute, Frame: frame})
	}

	g.effect.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.effect.Draw(screen)
	if g.showHUD {
		g.effect.DrawHUD(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.effect.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	cfg := fx.DefaultConfig()
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "window width")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "window height")
	flag.IntVar(&cfg.FireCount, "fire", cfg.FireCount, "fire particle count")
	flag.IntVar(&cfg.SmokeCount, "smoke", cfg.SmokeCount, "smoke particle count")
	flag.IntVar(&cfg.WaterCount, "water", cfg.WaterCount, "rain particle count")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.Float64Var(&cfg.FixedStep, "step", cfg.FixedStep, "fixed frame step in seconds (0 = wall clock)")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "start with sound muted")
	flag.BoolVar(&cfg.ShowHUD, "hud", cfg.ShowHUD, "show the HUD")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug logging")
	flag.StringVar(&cfg.TextureDir, "textures", cfg.TextureDir, "directory of PNG sprite overrides")
	flag.StringVar(&cfg.RecordPath, "record", cfg.RecordPath, "record toggles to this file")
	flag.StringVar(&cfg.ReplayPath, "replay", cfg.ReplayPath, "replay toggles from this file")
	flag.Parse()

	logger := core.NewDefaultLogger("firewater", cfg.Debug)

	var replay *record.Replay
	if cfg.ReplayPath != "" {
		rp, err := record.LoadReplay(cfg.ReplayPath)
		if err != nil {
			logger.Errorf("load replay: %v", err)
			os.Exit(1)
		}
		cfg.Seed = rp.Header.Seed
		cfg.FixedStep = rp.Header.Step
		logger.Infof("replaying %d toggles from %s", len(rp.Commands), cfg.ReplayPath)
		replay = rp
	}

	var recorder *record.Recorder
	if cfg.RecordPath != "" {
		if cfg.FixedStep == 0 {
			cfg.FixedStep = recordStep
		}
		rec, err := record.NewRecorder(cfg.RecordPath, record.Header{Seed: cfg.Seed, Step: cfg.FixedStep})
		if err != nil {
			logger.Errorf("start recording: %v", err)
			os.Exit(1)
		}
		logger.Infof("recording to %s", cfg.RecordPath)
		recorder = rec
	}

	am := audio.NewAudioManager(cfg.Seed)
	am.Muted = cfg.Mute
	if err := am.Init(); err != nil {
		logger.Warnf("audio disabled: %v", err)
		am = nil
	}

	effect, err := fx.NewEffect(cfg, am, logger)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	game := NewGame(effect, cfg.ShowHUD, logger)
	game.recorder = recorder
	game.replay = replay

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Fire & Water")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	runErr := ebiten.RunGame(game)

	if am != nil {
		am.Close()
	}
	if recorder != nil {
		if err := recorder.Close(); err != nil {
			logger.Errorf("finish recording: %v", err)
		}
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
