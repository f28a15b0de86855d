package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

var directions = [...]component.Direction{component.DirectionLeft, component.DirectionRight}

// InputSource is polled once per tick.
type InputSource interface {
	// KeyPressed reports whether the key for dir is currently held.
	KeyPressed(dir component.Direction) bool
	KeyJustReleased(dir component.Direction) bool
	// PointerJustPressed returns the buttons pressed this tick. Touches
	// count as left presses.
	PointerJustPressed() []ecs.PointerButton
	MuteToggled() bool
}

// InputSystem publishes raw key and pointer events. It reports key_down every
// tick a key is held, like an OS key repeat; the dispatcher debounces.
type InputSystem struct {
	source InputSource
	// OnMuteToggle runs when the mute key is pressed.
	OnMuteToggle func(w *ecs.World)
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = EbitenInput{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bus := w.Events()

	for _, dir := range directions {
		switch {
		case i.source.KeyPressed(dir):
			bus.Publish(ecs.Event{Type: ecs.EventKeyDown, Data: ecs.KeyEvent{Direction: dir}})
		case i.source.KeyJustReleased(dir):
			bus.Publish(ecs.Event{Type: ecs.EventKeyUp, Data: ecs.KeyEvent{Direction: dir}})
		}
	}

	for _, b := range i.source.PointerJustPressed() {
		bus.Publish(ecs.Event{Type: ecs.EventPointerDown, Data: ecs.PointerEvent{Button: b}})
	}

	if i.source.MuteToggled() && i.OnMuteToggle != nil {
		i.OnMuteToggle(w)
	}
}

// EbitenInput reads the keyboard, mouse, touch screen and the first gamepad.
type EbitenInput struct{}

func (EbitenInput) KeyPressed(dir component.Direction) bool {
	key, button := bindings(dir)
	if ebiten.IsKeyPressed(key) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadButtonPressed(id, button) {
			return true
		}
	}
	return false
}

func (EbitenInput) KeyJustReleased(dir component.Direction) bool {
	key, button := bindings(dir)
	if inpututil.IsKeyJustReleased(key) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustReleased(id, button) {
			return true
		}
	}
	return false
}

func (EbitenInput) PointerJustPressed() []ecs.PointerButton {
	var out []ecs.PointerButton
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		out = append(out, ecs.PointerLeft)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		out = append(out, ecs.PointerRight)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		out = append(out, ecs.PointerMiddle)
	}
	for range inpututil.AppendJustPressedTouchIDs(nil) {
		out = append(out, ecs.PointerLeft)
	}
	return out
}

func (EbitenInput) MuteToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

func bindings(dir component.Direction) (ebiten.Key, ebiten.StandardGamepadButton) {
	if dir == component.DirectionRight {
		return ebiten.KeyArrowRight, ebiten.StandardGamepadButtonFrontTopRight
	}
	return ebiten.KeyArrowLeft, ebiten.StandardGamepadButtonFrontTopLeft
}
