package system

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

// MarkerVariant is the sprite used for hits from one direction.
type MarkerVariant struct {
	Key   string
	Image *ebiten.Image
}

// MarkerConfig tunes hit markers.
type MarkerConfig struct {
	Lifetime time.Duration
	Layer    int
	Left     MarkerVariant
	Right    MarkerVariant
	// HitSound names the clip in the audio bank played on every hit.
	HitSound string
}

// HitMarkerSystem spawns a marker somewhere on the target for each hit and
// plays the hit sound. Markers expire through LifetimeSystem.
type HitMarkerSystem struct {
	clock TimeSource
	rng   *rand.Rand
	cfg   MarkerConfig
}

func NewHitMarkerSystem(clock TimeSource, rng *rand.Rand, cfg MarkerConfig) *HitMarkerSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &HitMarkerSystem{clock: clock, rng: rng, cfg: cfg}
}

// SetLifetime changes the lifetime of markers spawned after the call.
func (s *HitMarkerSystem) SetLifetime(d time.Duration) {
	if d > 0 {
		s.cfg.Lifetime = d
	}
}

// RenderHit implements HitRenderer.
func (s *HitMarkerSystem) RenderHit(w *ecs.World, dir component.Direction) {
	if w == nil {
		return
	}
	PlaySound(w, s.cfg.HitSound)

	cx, cy, tw, th, ok := findTarget(w)
	if !ok {
		return
	}
	x, y, rot := s.pose(cx, cy, tw, th)

	variant := s.cfg.Left
	if dir == component.DirectionRight {
		variant = s.cfg.Right
	}

	now := s.clock.Now()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1, Rotation: rot})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: variant.Image, Key: variant.Key, Centered: true})
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: s.cfg.Layer})
	_ = ecs.Add(w, e, component.HitMarkerComponent.Kind(), &component.HitMarker{Direction: dir})
	_ = ecs.Add(w, e, component.LifetimeComponent.Kind(), &component.Lifetime{SpawnedAt: now, ExpiresAt: now + s.cfg.Lifetime})
}

// pose picks a uniform point in the target box and a uniform rotation in
// [0, 2π).
func (s *HitMarkerSystem) pose(cx, cy, w, h float64) (x, y, rotation float64) {
	x = cx - w/2 + s.rng.Float64()*w
	y = cy - h/2 + s.rng.Float64()*h
	rotation = s.rng.Float64() * 2 * math.Pi
	return x, y, rotation
}

// findTarget returns the centre and scaled size of the first target.
func findTarget(w *ecs.World) (cx, cy, width, height float64, ok bool) {
	for _, e := range ecs.Query(w, component.TargetComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		target, okT := ecs.Get(w, e, component.TargetComponent.Kind())
		t, okX := ecs.Get(w, e, component.TransformComponent.Kind())
		if !okT || !okX {
			continue
		}
		sx, sy := t.Scale()
		return t.X, t.Y, target.Width * math.Abs(sx), target.Height * math.Abs(sy), true
	}
	return 0, 0, 0, 0, false
}
