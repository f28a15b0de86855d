package system

import (
	"fmt"
	"time"

	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

// RoundState is the phase of the round lifecycle.
type RoundState int

const (
	RoundIdle RoundState = iota
	RoundRunning
	RoundEnded
)

func (s RoundState) String() string {
	switch s {
	case RoundIdle:
		return "idle"
	case RoundRunning:
		return "running"
	case RoundEnded:
		return "ended"
	default:
		return fmt.Sprintf("RoundState(%d)", int(s))
	}
}

// HitRenderer gives visual and audio feedback for an accepted hit.
type HitRenderer interface {
	RenderHit(w *ecs.World, dir component.Direction)
}

// StartAffordance is the control that starts a round.
type StartAffordance interface {
	SetVisible(visible bool)
}

// RoundSystem owns the round lifecycle: Idle -> Running -> Ended -> Idle.
// Only a timeout ends a round; there is no pause or cancel.
type RoundSystem struct {
	clock      TimeSource
	duration   time.Duration
	renderer   HitRenderer
	affordance StartAffordance

	state     RoundState
	score     int
	lastScore int
	startedAt time.Duration
	remaining time.Duration
	text      string
}

func NewRoundSystem(clock TimeSource, duration time.Duration, renderer HitRenderer, affordance StartAffordance) *RoundSystem {
	return &RoundSystem{
		clock:      clock,
		duration:   duration,
		renderer:   renderer,
		affordance: affordance,
		remaining:  duration,
	}
}

// Subscribe makes the round consume hit events from w.
func (r *RoundSystem) Subscribe(w *ecs.World) {
	w.Events().Subscribe(ecs.EventHit, func(evt ecs.Event) {
		if h, ok := evt.Data.(ecs.HitEvent); ok {
			r.RegisterHit(w, h.Direction)
		}
	})
}

// Start begins a round from Idle. It reports false, and changes nothing,
// when a round is already running.
func (r *RoundSystem) Start(w *ecs.World) bool {
	if r.state != RoundIdle {
		return false
	}
	r.state = RoundRunning
	r.score = 0
	r.startedAt = r.clock.Now()
	r.remaining = r.duration
	if r.affordance != nil {
		r.affordance.SetVisible(false)
	}
	w.Events().Publish(ecs.Event{Type: ecs.EventRoundStarted, Data: ecs.RoundEvent{}})
	r.setText(w, runningText(r.remaining, r.score))
	return true
}

// RegisterHit scores one point and renders the hit. Outside a running round
// it is silently ignored.
func (r *RoundSystem) RegisterHit(w *ecs.World, dir component.Direction) bool {
	if r.state != RoundRunning {
		return false
	}
	r.score++
	if r.renderer != nil {
		r.renderer.RenderHit(w, dir)
	}
	return true
}

// Update is the per-tick countdown.
func (r *RoundSystem) Update(w *ecs.World) {
	if w == nil || r.state != RoundRunning {
		return
	}
	elapsed := r.clock.Now() - r.startedAt
	r.remaining = max(0, r.duration-elapsed)
	if r.remaining == 0 {
		r.end(w)
		return
	}
	r.setText(w, runningText(r.remaining, r.score))
}

func (r *RoundSystem) end(w *ecs.World) {
	r.state = RoundEnded
	r.lastScore = r.score
	r.setText(w, endedText(r.lastScore))
	if r.affordance != nil {
		r.affordance.SetVisible(true)
	}
	w.Events().Publish(ecs.Event{Type: ecs.EventRoundEnded, Data: ecs.RoundEvent{Score: r.lastScore}})
	r.score = 0
	r.state = RoundIdle
}

func (r *RoundSystem) setText(w *ecs.World, text string) {
	r.text = text
	ecs.ForEach(w, component.HUDComponent.Kind(), func(_ ecs.Entity, hud *component.HUD) {
		hud.Text = text
	})
}

// SetDuration changes the length of rounds started after the call.
func (r *RoundSystem) SetDuration(d time.Duration) {
	if d > 0 {
		r.duration = d
	}
}

func (r *RoundSystem) State() RoundState        { return r.state }
func (r *RoundSystem) Score() int               { return r.score }
func (r *RoundSystem) LastScore() int           { return r.lastScore }
func (r *RoundSystem) Remaining() time.Duration { return r.remaining }
func (r *RoundSystem) Text() string             { return r.text }

func runningText(remaining time.Duration, score int) string {
	secs := (remaining + time.Second - 1) / time.Second
	return fmt.Sprintf("time: %ds\nscore: %d", secs, score)
}

func endedText(score int) string {
	return fmt.Sprintf("game over\nscore: %d", score)
}
