package component

// MusicRequest is a one-shot request for global music playback.
//
// Only one song plays at a time. A request for a new track while another is
// playing fades the current one to silence first. An empty Track fades out
// and stops.
type MusicRequest struct {
	Track         string
	Volume        float64
	Loop          bool
	FadeOutFrames int
}

var MusicRequestComponent = NewComponent[MusicRequest]()
