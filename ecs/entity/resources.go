package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/npchit/assets"
	"github.com/milk9111/npchit/ecs/component"
)

// Resources resolves manifest keys for the builders. A false return means
// the asset is missing; builders degrade instead of failing.
type Resources interface {
	Image(key string) (*ebiten.Image, bool)
	ImageSize(key string) (int, int, bool)
	Sound(key string) (component.SoundPlayer, bool)
}

type libraryResources struct {
	lib *assets.Library
}

// FromLibrary adapts a loaded asset library. A nil library resolves nothing.
func FromLibrary(lib *assets.Library) Resources {
	return libraryResources{lib: lib}
}

func (r libraryResources) Image(key string) (*ebiten.Image, bool) {
	return r.lib.Image(key)
}

func (r libraryResources) ImageSize(key string) (int, int, bool) {
	return r.lib.ImageSize(key)
}

func (r libraryResources) Sound(key string) (component.SoundPlayer, bool) {
	if !r.lib.Has(assets.KindAudio, key) {
		return nil, false
	}
	p, err := r.lib.Player(key)
	if err != nil {
		return nil, false
	}
	return p, true
}

// TrackLoader opens music tracks from lib.
func TrackLoader(lib *assets.Library) func(track string) (component.SoundPlayer, error) {
	return func(track string) (component.SoundPlayer, error) {
		p, err := lib.Player(track)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}
