package system

import (
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

// LifetimeSystem destroys entities whose Lifetime has expired. Expiry only
// depends on the clock, never on round state.
type LifetimeSystem struct {
	clock TimeSource
}

func NewLifetimeSystem(clock TimeSource) *LifetimeSystem {
	return &LifetimeSystem{clock: clock}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := s.clock.Now()
	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, life *component.Lifetime) {
		if now >= life.ExpiresAt {
			ecs.DestroyEntity(w, e)
		}
	})
}
