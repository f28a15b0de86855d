package system

import (
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

// ViewportSystem keeps screen-anchored entities in place as the window
// changes size.
type ViewportSystem struct {
	width  float64
	height float64
}

func NewViewportSystem(width, height int) *ViewportSystem {
	return &ViewportSystem{width: float64(width), height: float64(height)}
}

// SetSize records the current logical screen size.
func (v *ViewportSystem) SetSize(width, height int) {
	v.width = float64(width)
	v.height = float64(height)
}

func (v *ViewportSystem) Size() (float64, float64) {
	return v.width, v.height
}

func (v *ViewportSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.ScreenAnchorComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, a *component.ScreenAnchor, t *component.Transform) {
		t.X = v.width*a.RelX + a.OffsetX
		t.Y = v.height*a.RelY + a.OffsetY
	})
}
