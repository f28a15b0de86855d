package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var errUnknownKind = errors.New("unknown asset kind")

// Loader resolves manifest paths against an ordered list of filesystems.
// The first filesystem holding a path wins.
type Loader struct {
	sources []fs.FS
}

func NewLoader(sources ...fs.FS) *Loader {
	return &Loader{sources: sources}
}

// DefaultLoader looks in the embedded assets first, then ./assets on disk.
func DefaultLoader() *Loader {
	return NewLoader(FS(), os.DirFS("assets"))
}

// Load reads every manifest entry. It never fails: entries that cannot be
// read or decoded are logged and left out of the library.
func (l *Loader) Load(m Manifest) *Library {
	lib := &Library{
		images:   make(map[string]image.Image),
		textures: make(map[string]*ebiten.Image),
		clips:    make(map[string]clip),
	}
	for _, e := range m {
		if err := l.loadEntry(lib, e); err != nil {
			log.Printf("assets: load %s: %v", e, err)
		}
	}
	lib.missing = lib.Verify(m)
	for _, e := range lib.missing {
		log.Printf("assets: missing %s %q", e.Kind, e.Key)
	}
	return lib
}

func (l *Loader) loadEntry(lib *Library, e Entry) error {
	data, err := l.read(e.Path)
	if err != nil {
		return err
	}
	switch e.Kind {
	case KindImage:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode image: %w", err)
		}
		lib.images[e.Key] = img
	case KindAudio:
		lib.clips[e.Key] = clip{path: e.Path, data: data}
	default:
		return fmt.Errorf("%w %q", errUnknownKind, e.Kind)
	}
	return nil
}

func (l *Loader) read(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fs.ErrNotExist
	}
	for _, src := range l.sources {
		if src == nil {
			continue
		}
		if data, err := fs.ReadFile(src, clean); err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("read %q: %w", clean, fs.ErrNotExist)
}

type clip struct {
	path string
	data []byte
}

// Library holds the resources that resolved. Images are decoded at load and
// uploaded to the GPU on first use. Audio stays encoded until a player is
// requested.
type Library struct {
	images   map[string]image.Image
	textures map[string]*ebiten.Image
	clips    map[string]clip
	missing  []Entry
}

// Has reports whether key of the given kind resolved.
func (lib *Library) Has(kind Kind, key string) bool {
	if lib == nil {
		return false
	}
	switch kind {
	case KindImage:
		_, ok := lib.images[key]
		return ok
	case KindAudio:
		_, ok := lib.clips[key]
		return ok
	}
	return false
}

// Verify returns the manifest entries that did not resolve.
func (lib *Library) Verify(m Manifest) []Entry {
	var missing []Entry
	for _, e := range m {
		if !lib.Has(e.Kind, e.Key) {
			missing = append(missing, e)
		}
	}
	return missing
}

// Missing returns the entries reported missing by the last Load.
func (lib *Library) Missing() []Entry {
	if lib == nil {
		return nil
	}
	return lib.missing
}

// ImageSize returns the pixel size of a loaded image.
func (lib *Library) ImageSize(key string) (int, int, bool) {
	if lib == nil {
		return 0, 0, false
	}
	img, ok := lib.images[key]
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Image returns the GPU image for key.
func (lib *Library) Image(key string) (*ebiten.Image, bool) {
	if lib == nil {
		return nil, false
	}
	if tex, ok := lib.textures[key]; ok {
		return tex, true
	}
	img, ok := lib.images[key]
	if !ok {
		return nil, false
	}
	tex := ebiten.NewImageFromImage(img)
	lib.textures[key] = tex
	return tex, true
}

// Player creates a new audio player for key. Each call returns an
// independent player.
func (lib *Library) Player(key string) (*audio.Player, error) {
	if lib == nil {
		return nil, fmt.Errorf("audio %q: %w", key, fs.ErrNotExist)
	}
	c, ok := lib.clips[key]
	if !ok {
		return nil, fmt.Errorf("audio %q: %w", key, fs.ErrNotExist)
	}
	return newPlayer(c.path, c.data)
}
