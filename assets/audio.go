package assets

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

var (
	audioContextOnce sync.Once
	audioContext     *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on first
// use. Ebitengine allows only one.
func AudioContext() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

func newPlayer(path string, data []byte) (*audio.Player, error) {
	ctx := AudioContext()
	reader := bytes.NewReader(data)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(data), nil
}
