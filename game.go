package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/npchit/assets"
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
	"github.com/milk9111/npchit/ecs/entity"
	"github.com/milk9111/npchit/ecs/system"
	"github.com/milk9111/npchit/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	ConfigFile string
	Debug      bool
	// Seed fixes the hit marker RNG when HasSeed is set.
	Seed    uint64
	HasSeed bool
	Watch   bool
	Mute    bool
}

type Game struct {
	world    *ecs.World
	clock    *system.Clock
	viewport *system.ViewportSystem
	round    *system.RoundSystem
	markers  *system.HitMarkerSystem

	ui    *ebitenui.UI
	start *StartButton

	spec       *prefabs.GameSpec
	configFile string
	watcher    *prefabs.Watcher

	debug bool
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadGameSpec(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	lib := assets.DefaultLoader().Load(manifestFromSpec(spec))
	res := entity.FromLibrary(lib)

	g := &Game{
		world:      ecs.NewWorld(),
		clock:      system.NewClock(ebiten.TPS()),
		viewport:   system.NewViewportSystem(baseWidth, baseHeight),
		spec:       spec,
		configFile: opts.ConfigFile,
		debug:      opts.Debug,
	}
	if err := entity.NewScene(g.world, res); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if opts.HasSeed {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}
	g.markers = system.NewHitMarkerSystem(g.clock, rng, markerConfig(spec, res))

	g.ui, g.start = NewStartUI(spec.StartButton, g.onStartClicked)
	g.round = system.NewRoundSystem(g.clock, spec.RoundDuration(), g.markers, g.start)

	dispatcher := system.NewInputDispatcher()
	dispatcher.Subscribe(g.world)
	g.round.Subscribe(g.world)

	input := system.NewInputSystem(system.EbitenInput{})
	input.OnMuteToggle = func(w *ecs.World) {
		system.ToggleMusic(w, g.spec.Music.Track)
	}

	g.world.AddSystem(g.clock)
	g.world.AddSystem(g.viewport)
	g.world.AddSystem(input)
	g.world.AddSystem(uiSystem{ui: g.ui})
	g.world.AddSystem(g.round)
	g.world.AddSystem(system.NewLifetimeSystem(g.clock))
	g.world.AddSystem(system.NewAudioSystem())
	g.world.AddSystem(system.NewMusicSystem(entity.TrackLoader(lib)))
	g.world.AddSystem(system.NewRenderSystem())
	g.world.AddSystem(system.NewHUDSystem())

	g.startMusic(opts.Mute)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) startMusic(muted bool) {
	if g.spec.Music.Track == "" {
		return
	}
	if muted {
		if ent, ok := ecs.First(g.world, component.MusicPlayerComponent.Kind()); ok {
			if player, ok := ecs.Get(g.world, ent, component.MusicPlayerComponent.Kind()); ok {
				player.Muted = true
			}
		}
		return
	}
	system.RequestMusicWithOptions(g.world, &component.MusicRequest{
		Track:  g.spec.Music.Track,
		Volume: g.spec.Music.Volume,
		Loop:   true,
	})
}

func (g *Game) onStartClicked() {
	if g.round.State() != system.RoundIdle {
		return
	}
	system.PlaySound(g.world, g.spec.StartButton.Sound)
	g.round.Start(g.world)
}

func (g *Game) Update() error {
	g.pollConfig()
	g.world.Update()
	return nil
}

// pollConfig applies tuning edits. Rounds already running keep their length.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	want := filepath.Base(g.configFile)
	if g.configFile == "" {
		want = prefabs.GameSpecFile
	}
	for _, name := range g.watcher.Poll() {
		if name != want {
			continue
		}
		spec, err := prefabs.LoadGameSpec(g.configFile)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			continue
		}
		g.spec = spec
		g.round.SetDuration(spec.RoundDuration())
		g.markers.SetLifetime(spec.MarkerLifetime())
		log.Printf("reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  entities: %d  round: %s",
			ebiten.ActualFPS(), len(ecs.Entities(g.world)), g.round.State()), 4, screen.Bounds().Dy()-20)
	}
}

// Layout keeps the logical screen the size of the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func markerConfig(spec *prefabs.GameSpec, res entity.Resources) system.MarkerConfig {
	variant := func(key string) system.MarkerVariant {
		img, _ := res.Image(key)
		return system.MarkerVariant{Key: key, Image: img}
	}
	return system.MarkerConfig{
		Lifetime: spec.MarkerLifetime(),
		Layer:    spec.Marker.Layer,
		Left:     variant(spec.Marker.LeftImage),
		Right:    variant(spec.Marker.RightImage),
		HitSound: spec.Marker.HitSound,
	}
}

// manifestFromSpec converts the config asset list. Entries of an unknown
// kind are logged and skipped.
func manifestFromSpec(spec *prefabs.GameSpec) assets.Manifest {
	m := make(assets.Manifest, 0, len(spec.Assets))
	for _, a := range spec.Assets {
		kind := assets.Kind(a.Kind)
		if kind != assets.KindImage && kind != assets.KindAudio {
			log.Printf("config: asset %q has unknown kind %q", a.Key, a.Kind)
			continue
		}
		m = append(m, assets.Entry{Kind: kind, Key: a.Key, Path: a.Path})
	}
	return m
}
