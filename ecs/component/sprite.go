package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite draws Image around its origin. A nil Image draws nothing, which is
// how a missing texture degrades.
type Sprite struct {
	Image *ebiten.Image
	// Key is the asset manifest key the image was resolved from.
	Key     string
	OriginX float64
	OriginY float64
	// Centered places the origin at the image centre regardless of
	// OriginX/OriginY.
	Centered bool
}

// Origin returns the draw origin in image pixels.
func (s Sprite) Origin() (float64, float64) {
	if s.Centered && s.Image != nil {
		b := s.Image.Bounds()
		return float64(b.Dx()) / 2, float64(b.Dy()) / 2
	}
	return s.OriginX, s.OriginY
}

var SpriteComponent = NewComponent[Sprite]()
