package entity

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
	"github.com/milk9111/npchit/prefabs"
)

type fakePlayer struct{ playing bool }

func (p *fakePlayer) Play()               { p.playing = true }
func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) Rewind() error       { return nil }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(_ float64) {}

type fakeResources struct {
	sizes  map[string][2]int
	sounds map[string]component.SoundPlayer
}

func (r fakeResources) Image(key string) (*ebiten.Image, bool) {
	_, ok := r.sizes[key]
	return nil, ok
}

func (r fakeResources) ImageSize(key string) (int, int, bool) {
	s, ok := r.sizes[key]
	return s[0], s[1], ok
}

func (r fakeResources) Sound(key string) (component.SoundPlayer, bool) {
	p, ok := r.sounds[key]
	return p, ok
}

func TestNewScene(t *testing.T) {
	w := ecs.NewWorld()
	hit := &fakePlayer{}
	res := fakeResources{
		sizes:  map[string][2]int{"npc": {120, 240}, "background": {1024, 768}},
		sounds: map[string]component.SoundPlayer{"hitSound": hit},
	}
	if err := NewScene(w, res); err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	npc, ok := ecs.First(w, component.TargetComponent.Kind())
	if !ok {
		t.Fatalf("expected an npc target")
	}
	target, _ := ecs.Get(w, npc, component.TargetComponent.Kind())
	if target.Width != 120 || target.Height != 240 {
		t.Fatalf("target should use image size, got %vx%v", target.Width, target.Height)
	}
	anchor, _ := ecs.Get(w, npc, component.ScreenAnchorComponent.Kind())
	if anchor.RelX != 0.5 || anchor.RelY != 0.5 || anchor.OffsetY != -100 {
		t.Fatalf("unexpected npc anchor %+v", *anchor)
	}
	layer, _ := ecs.Get(w, npc, component.RenderLayerComponent.Kind())
	if layer.Index != component.LayerNPC {
		t.Fatalf("npc layer = %d", layer.Index)
	}

	hudEnt, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		t.Fatalf("expected a hud")
	}
	hud, _ := ecs.Get(w, hudEnt, component.HUDComponent.Kind())
	if hud.FontSize != 32 || hud.Color != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("unexpected hud %+v", *hud)
	}

	bankEnt, ok := ecs.First(w, component.AudioComponent.Kind())
	if !ok {
		t.Fatalf("expected a sound bank")
	}
	bank, _ := ecs.Get(w, bankEnt, component.AudioComponent.Kind())
	if i := bank.Index("hitSound"); i < 0 || bank.Players[i] != hit || bank.Volume[i] != 0.5 {
		t.Fatalf("hitSound not wired: %+v", *bank)
	}
	if i := bank.Index("buttonSound"); i < 0 || bank.Players[i] != nil {
		t.Fatalf("missing buttonSound should be a silent clip")
	}

	musicEnt, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		t.Fatalf("expected a music player")
	}
	music, _ := ecs.Get(w, musicEnt, component.MusicPlayerComponent.Kind())
	if music.TrackVolumes["backgroundMusic"] != 1 {
		t.Fatalf("unexpected track volumes %v", music.TrackVolumes)
	}
}

func TestNPCTargetFallback(t *testing.T) {
	w := ecs.NewWorld()
	npc, err := NewNPC(w, FromLibrary(nil))
	if err != nil {
		t.Fatalf("NewNPC: %v", err)
	}
	target, ok := ecs.Get(w, npc, component.TargetComponent.Kind())
	if !ok || target.Width != 200 || target.Height != 300 {
		t.Fatalf("expected fallback 200x300 target, got %+v", target)
	}
	sprite, _ := ecs.Get(w, npc, component.SpriteComponent.Kind())
	if sprite.Image != nil || sprite.Key != "npc" {
		t.Fatalf("missing npc image should leave a keyed, empty sprite: %+v", *sprite)
	}
}

func TestBuildEntityErrors(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })

	files := map[string]string{
		"empty.yaml":    "name: empty\n",
		"unknown.yaml":  "name: x\ncomponents:\n  physics_body: {}\n",
		"notarget.yaml": "name: x\ncomponents:\n  target: {}\n",
		"autoplay.yaml": "name: x\ncomponents:\n  audio:\n    clips:\n      - name: a\n    autoplay: [b]\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cases := []struct {
		name string
		file string
		want string
	}{
		{"no_components", "empty.yaml", "does not define components"},
		{"unknown_component", "unknown.yaml", `no builder for component "physics_body"`},
		{"target_without_size", "notarget.yaml", "target has no size"},
		{"bad_autoplay", "autoplay.yaml", `autoplay clip "b"`},
		{"missing_file", "nope.yaml", "load"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildEntity(w, nil, c.file)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("failed build should leave no entities, got %d", n)
			}
		})
	}
}
