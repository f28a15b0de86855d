package assets

import "fmt"

// Kind selects how an asset is loaded.
type Kind string

const (
	KindImage Kind = "image"
	KindAudio Kind = "audio"
)

// Entry is one declared resource.
type Entry struct {
	Kind Kind
	Key  string
	Path string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %q (%s)", e.Kind, e.Key, e.Path)
}

// Manifest is the full list of resources the game expects.
type Manifest []Entry
