package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps effect actions to keys
type Bindings struct {
	Toggle    ebiten.Key
	ToggleHUD ebiten.Key
	Mute      ebiten.Key
	Quit      ebiten.Key
}

// DefaultBindings returns the stock key layout
func DefaultBindings() Bindings {
	return Bindings{
		Toggle:    ebiten.KeySpace,
		ToggleHUD: ebiten.KeyH,
		Mute:      ebiten.KeyM,
		Quit:      ebiten.KeyEscape,
	}
}

// InputState tracks the pointer and keyboard per frame
type InputState struct {
	Keys Bindings

	// Mouse
	MouseX, MouseY  int
	LeftJustPressed bool

	// Touches that started this frame
	NewTouches []ebiten.TouchID

	ToggleRequested bool
	HUDRequested    bool
	MuteRequested   bool
	QuitRequested   bool
}

func NewInputState() *InputState {
	return &InputState{Keys: DefaultBindings()}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.NewTouches = inpututil.AppendJustPressedTouchIDs(s.NewTouches[:0])

	s.ToggleRequested = Pressed(s.LeftJustPressed, len(s.NewTouches), s.IsKeyJustPressed(s.Keys.Toggle))
	s.HUDRequested = s.IsKeyJustPressed(s.Keys.ToggleHUD)
	s.MuteRequested = s.IsKeyJustPressed(s.Keys.Mute)
	s.QuitRequested = s.IsKeyJustPressed(s.Keys.Quit)
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Pressed folds a click, any new touch or the toggle key into one
// toggle request; several touches in one frame still toggle once.
func Pressed(click bool, newTouches int, key bool) bool {
	return click || newTouches > 0 || key
}
