package component

import "time"

// Lifetime destroys its entity once the game clock reaches ExpiresAt.
type Lifetime struct {
	SpawnedAt time.Duration
	ExpiresAt time.Duration
}

var LifetimeComponent = NewComponent[Lifetime]()
