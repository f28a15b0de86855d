package component

const (
	LayerBackground = 0
	LayerNPC        = 10
	LayerMarker     = 20
)

// RenderLayer orders sprites; lower indices draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
