package component

// Target marks the NPC. Width and Height span the box hit markers land in,
// centred on the entity transform.
type Target struct {
	Width  float64
	Height float64
}

var TargetComponent = NewComponent[Target]()
