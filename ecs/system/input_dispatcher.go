package system

import (
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

// InputDispatcher turns raw key and pointer events into hit events.
//
// A held key keeps reporting key_down every tick; the per-direction latch
// lets only the first one through until the key is released. Pointer clicks
// are discrete and are never latched.
type InputDispatcher struct {
	latched map[component.Direction]bool
}

func NewInputDispatcher() *InputDispatcher {
	return &InputDispatcher{latched: make(map[component.Direction]bool)}
}

// Subscribe wires the dispatcher to the raw input events of w.
func (d *InputDispatcher) Subscribe(w *ecs.World) {
	bus := w.Events()
	bus.Subscribe(ecs.EventKeyDown, func(evt ecs.Event) {
		if k, ok := evt.Data.(ecs.KeyEvent); ok {
			d.OnKeyDown(w, k.Direction)
		}
	})
	bus.Subscribe(ecs.EventKeyUp, func(evt ecs.Event) {
		if k, ok := evt.Data.(ecs.KeyEvent); ok {
			d.OnKeyUp(k.Direction)
		}
	})
	bus.Subscribe(ecs.EventPointerDown, func(evt ecs.Event) {
		if p, ok := evt.Data.(ecs.PointerEvent); ok {
			d.OnPointerDown(w, p.Button)
		}
	})
}

// OnKeyDown emits a hit unless dir is already latched. It reports whether a
// hit was emitted.
func (d *InputDispatcher) OnKeyDown(w *ecs.World, dir component.Direction) bool {
	if d.latched[dir] {
		return false
	}
	d.latched[dir] = true
	emitHit(w, dir)
	return true
}

func (d *InputDispatcher) OnKeyUp(dir component.Direction) {
	d.latched[dir] = false
}

// OnPointerDown maps the left button to a left hit and the right button to a
// right hit. Other buttons are ignored.
func (d *InputDispatcher) OnPointerDown(w *ecs.World, button ecs.PointerButton) bool {
	switch button {
	case ecs.PointerLeft:
		emitHit(w, component.DirectionLeft)
	case ecs.PointerRight:
		emitHit(w, component.DirectionRight)
	default:
		return false
	}
	return true
}

func (d *InputDispatcher) Latched(dir component.Direction) bool {
	return d.latched[dir]
}

func emitHit(w *ecs.World, dir component.Direction) {
	w.Events().Publish(ecs.Event{Type: ecs.EventHit, Data: ecs.HitEvent{Direction: dir}})
}
