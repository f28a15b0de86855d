package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(w *ecs.World) {}

// Draw renders every sprite, lowest layer first. Ties go to the older entity.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, e := range drawOrder(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		screen.DrawImage(s.Image, spriteDrawOptions(*t, *s))
	}
}

func drawOrder(w *ecs.World) []ecs.Entity {
	entities := ecs.Query(w, component.TransformComponent.Kind().ID(), component.SpriteComponent.Kind().ID())
	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}

func spriteDrawOptions(t component.Transform, s component.Sprite) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	ox, oy := s.Origin()
	op.GeoM.Translate(-ox, -oy)
	op.GeoM.Scale(t.Scale())
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)
	op.Filter = ebiten.FilterLinear
	return op
}
