package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusDispatchesQueuedEvents(t *testing.T) {
	bus := NewEventBus()
	s := NewSimContext()
	var resized ResizePayload

	bus.On(EvtToggle, func(Event) { s.Toggle() })
	bus.On(EvtResize, func(e Event) { resized = e.Payload.(ResizePayload) })

	bus.Emit(Event{Type: EvtToggle})
	bus.Emit(Event{Type: EvtResize, Payload: ResizePayload{Width: 800, Height: 600}})
	assert.Equal(t, 2, bus.Pending())
	assert.Equal(t, ModeFire, s.Mode, "nothing applies before Dispatch")

	bus.Dispatch()
	assert.Equal(t, ModeWater, s.Mode)
	assert.Equal(t, ResizePayload{800, 600}, resized)
	assert.Zero(t, bus.Pending())

	// events without listeners are dropped
	bus.Emit(Event{Type: EvtToggleMute})
	bus.Dispatch()
	assert.Zero(t, bus.Pending())
}
