package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

type fakePlayer struct {
	playing bool
	plays   int
	pauses  int
	rewinds int
	volume  float64
}

func (p *fakePlayer) Play()               { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()              { p.playing = false; p.pauses++ }
func (p *fakePlayer) Rewind() error       { p.rewinds++; return nil }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

type fakeAffordance struct {
	visible bool
	calls   int
}

func (a *fakeAffordance) SetVisible(v bool) { a.visible = v; a.calls++ }

type fakeInput struct {
	pressed  map[component.Direction]bool
	released map[component.Direction]bool
	pointers []ecs.PointerButton
	mute     bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed:  make(map[component.Direction]bool),
		released: make(map[component.Direction]bool),
	}
}

func (f *fakeInput) KeyPressed(dir component.Direction) bool { return f.pressed[dir] }

func (f *fakeInput) KeyJustReleased(dir component.Direction) bool {
	r := f.released[dir]
	f.released[dir] = false
	return r
}

func (f *fakeInput) PointerJustPressed() []ecs.PointerButton {
	out := f.pointers
	f.pointers = nil
	return out
}

func (f *fakeInput) MuteToggled() bool {
	m := f.mute
	f.mute = false
	return m
}

// hold presses dir for ticks updates and then releases it.
func (f *fakeInput) hold(h *harness, dir component.Direction, ticks int) {
	f.pressed[dir] = true
	h.step(ticks)
	f.pressed[dir] = false
	f.released[dir] = true
	h.step(1)
}

func (f *fakeInput) click(h *harness, button ecs.PointerButton) {
	f.pointers = append(f.pointers, button)
	h.step(1)
}

type harness struct {
	t          *testing.T
	w          *ecs.World
	clock      *Clock
	input      *fakeInput
	dispatcher *InputDispatcher
	round      *RoundSystem
	markers    *HitMarkerSystem
	affordance *fakeAffordance
	hitSound   *fakePlayer
	hud        ecs.Entity
	target     ecs.Entity
}

// newHarness wires the round loop the way the game does, minus rendering.
func newHarness(t *testing.T) *harness {
	t.Helper()
	w := ecs.NewWorld()
	h := &harness{
		t:          t,
		w:          w,
		clock:      NewClock(DefaultTPS),
		input:      newFakeInput(),
		dispatcher: NewInputDispatcher(),
		affordance: &fakeAffordance{visible: true},
		hitSound:   &fakePlayer{},
	}
	h.markers = NewHitMarkerSystem(h.clock, rand.New(rand.NewPCG(1, 2)), MarkerConfig{
		Lifetime: 900 * time.Millisecond,
		Layer:    component.LayerMarker,
		Left:     MarkerVariant{Key: "leftHit"},
		Right:    MarkerVariant{Key: "rightHit"},
		HitSound: "hitSound",
	})
	h.round = NewRoundSystem(h.clock, 60*time.Second, h.markers, h.affordance)

	h.dispatcher.Subscribe(w)
	h.round.Subscribe(w)

	w.AddSystem(h.clock)
	w.AddSystem(NewInputSystem(h.input))
	w.AddSystem(h.round)
	w.AddSystem(NewLifetimeSystem(h.clock))
	w.AddSystem(NewAudioSystem())

	h.hud = ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, h.hud, component.HUDComponent.Kind(), &component.HUD{}))

	h.target = ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, h.target, component.TransformComponent.Kind(), &component.Transform{X: 400, Y: 300}))
	mustAdd(t, ecs.Add(w, h.target, component.TargetComponent.Kind(), &component.Target{Width: 200, Height: 300}))

	bank := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, bank, component.AudioComponent.Kind(), &component.Audio{
		Names:   []string{"hitSound"},
		Players: []component.SoundPlayer{h.hitSound},
		Volume:  []float64{0.5},
		Play:    []bool{false},
		Stop:    []bool{false},
	}))
	return h
}

func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.w.Update()
	}
}

func (h *harness) hudText() string {
	hud, ok := ecs.Get(h.w, h.hud, component.HUDComponent.Kind())
	if !ok {
		h.t.Fatalf("hud entity missing")
	}
	return hud.Text
}

func (h *harness) markerEntities() []ecs.Entity {
	return ecs.Query(h.w, component.HitMarkerComponent.Kind().ID())
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}
