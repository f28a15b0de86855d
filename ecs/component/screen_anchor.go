package component

// ScreenAnchor pins a transform to a fraction of the viewport plus a pixel
// offset. The viewport system re-applies it whenever the window resizes.
type ScreenAnchor struct {
	RelX    float64
	RelY    float64
	OffsetX float64
	OffsetY float64
}

var ScreenAnchorComponent = NewComponent[ScreenAnchor]()
