package ecs

import "github.com/milk9111/npchit/ecs/component"

// EventType names an event on the bus.
type EventType string

const (
	EventKeyDown      EventType = "key_down"
	EventKeyUp        EventType = "key_up"
	EventPointerDown  EventType = "pointer_down"
	EventHit          EventType = "hit"
	EventRoundStarted EventType = "round_started"
	EventRoundEnded   EventType = "round_ended"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// PointerButton identifies the pointer button behind a pointer_down event.
type PointerButton int

const (
	PointerLeft PointerButton = iota
	PointerRight
	PointerMiddle
)

// KeyEvent is the payload of key_down and key_up.
type KeyEvent struct {
	Direction component.Direction
}

// PointerEvent is the payload of pointer_down.
type PointerEvent struct {
	Button PointerButton
}

// HitEvent is the payload of hit.
type HitEvent struct {
	Direction component.Direction
}

// RoundEvent is the payload of round_started and round_ended.
type RoundEvent struct {
	Score int
}

// EventHandler receives published events.
type EventHandler func(Event)

// EventBus dispatches events synchronously to subscribers in subscription
// order. Handlers may publish further events; those are delivered before
// Publish returns.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

// Subscribe registers fn for events of type t.
func (b *EventBus) Subscribe(t EventType, fn EventHandler) {
	if b == nil || fn == nil {
		return
	}
	if b.handlers == nil {
		b.handlers = make(map[EventType][]EventHandler)
	}
	b.handlers[t] = append(b.handlers[t], fn)
}

// Publish delivers evt to every handler subscribed to its type.
func (b *EventBus) Publish(evt Event) {
	if b == nil {
		return
	}
	for _, fn := range b.handlers[evt.Type] {
		fn(evt)
	}
}
