package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/npchit/assets"
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

const defaultHUDFontSize = 32

type HUDSystem struct {
	faces map[float64]text.Face
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{faces: make(map[float64]text.Face)}
}

func (h *HUDSystem) Update(w *ecs.World) {}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}
	ecs.ForEach(w, component.HUDComponent.Kind(), func(_ ecs.Entity, hud *component.HUD) {
		if hud.Text == "" {
			return
		}
		face := h.face(hud.FontSize)
		if face == nil {
			return
		}

		var clr color.Color = color.White
		if hud.Color != nil {
			clr = hud.Color
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(hud.X, hud.Y)
		op.ColorScale.ScaleWithColor(clr)
		op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent + face.Metrics().HLineGap
		text.Draw(screen, hud.Text, face, op)
	})
}

func (h *HUDSystem) face(size float64) text.Face {
	if size <= 0 {
		size = defaultHUDFontSize
	}
	if f, ok := h.faces[size]; ok {
		return f
	}
	f := assets.Face(size)
	if f != nil {
		h.faces[size] = f
	}
	return f
}
