package component

// SoundPlayer is the subset of *audio.Player the audio systems drive.
type SoundPlayer interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// Audio is a bank of named clips. Systems set Play or Stop for a clip; the
// audio system consumes the flags on its next update. A nil player is a
// clip whose asset failed to load and stays silent.
type Audio struct {
	Names   []string
	Players []SoundPlayer
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Index returns the clip slot for name, or -1.
func (a *Audio) Index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
