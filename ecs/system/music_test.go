package system

import (
	"errors"
	"testing"

	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

type musicFixture struct {
	w       *ecs.World
	sys     *MusicSystem
	players map[string]*fakePlayer
	loads   int
	player  *component.MusicPlayer
}

func newMusicFixture(t *testing.T) *musicFixture {
	t.Helper()
	f := &musicFixture{
		w:       ecs.NewWorld(),
		players: map[string]*fakePlayer{"backgroundMusic": {}, "other": {}},
	}
	f.sys = NewMusicSystem(func(track string) (component.SoundPlayer, error) {
		f.loads++
		p, ok := f.players[track]
		if !ok {
			return nil, errors.New("unknown track")
		}
		return p, nil
	})
	e := ecs.CreateEntity(f.w)
	f.player = &component.MusicPlayer{TrackVolumes: map[string]float64{"backgroundMusic": 0.8}}
	mustAdd(t, ecs.Add(f.w, e, component.MusicPlayerComponent.Kind(), f.player))
	return f
}

func (f *musicFixture) run(n int) {
	for i := 0; i < n; i++ {
		f.sys.Update(f.w)
	}
}

func TestMusicStartsTrack(t *testing.T) {
	f := newMusicFixture(t)
	RequestMusic(f.w, "backgroundMusic")
	f.run(1)

	bg := f.players["backgroundMusic"]
	if !bg.playing || bg.volume != 0.8 {
		t.Fatalf("expected background music at 0.8, got %+v", *bg)
	}
	if f.player.CurrentTrack != "backgroundMusic" || !f.player.CurrentLoop {
		t.Fatalf("unexpected player state %+v", *f.player)
	}
	if n := len(ecs.Query(f.w, component.MusicRequestComponent.Kind().ID())); n != 0 {
		t.Fatalf("requests should be consumed, %d left", n)
	}
}

func TestMusicLoops(t *testing.T) {
	f := newMusicFixture(t)
	RequestMusic(f.w, "backgroundMusic")
	f.run(1)

	bg := f.players["backgroundMusic"]
	bg.playing = false
	f.run(1)
	if !bg.playing || bg.plays != 2 {
		t.Fatalf("looping track should restart, got %+v", *bg)
	}
}

func TestMusicSwitchFadesOut(t *testing.T) {
	f := newMusicFixture(t)
	RequestMusic(f.w, "backgroundMusic")
	f.run(1)
	RequestMusic(f.w, "other")

	f.run(defaultMusicFadeFrames / 2)
	if f.player.CurrentTrack != "backgroundMusic" {
		t.Fatalf("switch should wait for the fade")
	}
	if v := f.players["backgroundMusic"].volume; v >= 0.8 || v <= 0 {
		t.Fatalf("expected a partial fade, got volume %v", v)
	}

	f.run(defaultMusicFadeFrames)
	if f.player.CurrentTrack != "other" || !f.players["other"].playing {
		t.Fatalf("expected other track playing, got %+v", *f.player)
	}
	if f.players["backgroundMusic"].playing {
		t.Fatalf("old track should be paused")
	}
}

func TestMusicToggle(t *testing.T) {
	f := newMusicFixture(t)
	RequestMusic(f.w, "backgroundMusic")
	f.run(1)

	ToggleMusic(f.w, "backgroundMusic")
	f.run(defaultMusicFadeFrames + 2)
	if !f.player.Muted || f.player.CurrentTrack != "" {
		t.Fatalf("expected muted and stopped, got %+v", *f.player)
	}
	bg := f.players["backgroundMusic"]
	if bg.playing {
		t.Fatalf("background music should be paused")
	}

	ToggleMusic(f.w, "backgroundMusic")
	f.run(1)
	if f.player.Muted || !bg.playing || f.player.CurrentTrack != "backgroundMusic" {
		t.Fatalf("expected music back on, got %+v", *f.player)
	}
	if f.loads != 1 {
		t.Fatalf("track player should be reused, loaded %d times", f.loads)
	}
}

func TestMusicLoadFailure(t *testing.T) {
	f := newMusicFixture(t)
	RequestMusic(f.w, "nope")
	f.run(2)
	if f.player.CurrentTrack != "" {
		t.Fatalf("failed track should not become current, got %q", f.player.CurrentTrack)
	}
}
