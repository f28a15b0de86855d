package component

// Transform places an entity in screen space. Zero scales draw at 1.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Scale returns the effective scale factors.
func (t Transform) Scale() (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

var TransformComponent = NewComponent[Transform]()
