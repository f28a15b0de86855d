package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	configFile := flag.String("config", "", "tuning file in prefabs/ (default game.yaml)")
	seed := flag.String("seed", "", "fixed seed for hit marker placement")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes on disk")
	mute := flag.Bool("mute", false, "start with background music muted")
	flag.Parse()

	opts := Options{
		ConfigFile: *configFile,
		Debug:      *debug,
		Watch:      *watch,
		Mute:       *mute,
	}
	if *seed != "" {
		v, err := strconv.ParseUint(*seed, 10, 64)
		if err != nil {
			log.Fatalf("invalid -seed %q: %v", *seed, err)
		}
		opts.Seed, opts.HasSeed = v, true
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle(game.spec.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
