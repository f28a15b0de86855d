package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// DefaultFontSource returns the shared Go Regular face source. It is nil
// only if the embedded font fails to parse.
func DefaultFontSource() *text.GoTextFaceSource {
	fontOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("assets: parse default font: %v", err)
			return
		}
		fontSource = s
	})
	return fontSource
}

// Face returns a Go Regular face at size.
func Face(size float64) text.Face {
	src := DefaultFontSource()
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}
