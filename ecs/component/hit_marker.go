package component

// Direction is the side a hit came from.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// HitMarker tags the transient sprite spawned for one accepted hit.
type HitMarker struct {
	Direction Direction
}

var HitMarkerComponent = NewComponent[HitMarker]()
