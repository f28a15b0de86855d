package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Drawer is implemented by systems that also render.
type Drawer interface {
	Draw(w *World, screen *ebiten.Image)
}

// Draw calls every registered system that implements Drawer, in update order.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.systems {
		if d, ok := s.(Drawer); ok {
			d.Draw(w, screen)
		}
	}
}
