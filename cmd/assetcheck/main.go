package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/npchit/assets"
	"github.com/milk9111/npchit/prefabs"
)

// previewGame cycles through the loaded images.
type previewGame struct {
	keys        []string
	images      []*ebiten.Image
	current     int
	tick        int
	ticksPerImg int
}

func (g *previewGame) Update() error {
	if len(g.images) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerImg {
		g.tick = 0
		g.current = (g.current + 1) % len(g.images)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	if len(g.images) == 0 {
		ebitenutil.DebugPrint(screen, "no images loaded")
		return
	}
	img := g.images[g.current]
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	scale := min(float64(sw)/float64(iw), float64(sh)/float64(ih), 1)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(sw)-float64(iw)*scale)/2, (float64(sh)-float64(ih)*scale)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%dx%d)", g.keys[g.current], iw, ih))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 512, 512
}

func main() {
	configFile := flag.String("config", "", "tuning file in prefabs/ (default game.yaml)")
	preview := flag.Bool("preview", false, "open a window cycling through the loaded images")
	seconds := flag.Float64("every", 1.5, "seconds per image in preview")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	manifest := make(assets.Manifest, 0, len(spec.Assets))
	for _, a := range spec.Assets {
		manifest = append(manifest, assets.Entry{Kind: assets.Kind(a.Kind), Key: a.Key, Path: a.Path})
	}

	lib := assets.DefaultLoader().Load(manifest)
	missing := lib.Missing()
	for _, e := range manifest {
		status := "ok"
		if !lib.Has(e.Kind, e.Key) {
			status = "MISSING"
		}
		fmt.Printf("%-8s %s\n", status, e)
	}
	fmt.Printf("%d of %d assets resolved\n", len(manifest)-len(missing), len(manifest))

	if *preview {
		g := &previewGame{ticksPerImg: max(1, int(*seconds*float64(ebiten.DefaultTPS)))}
		for _, e := range manifest {
			if e.Kind != assets.KindImage {
				continue
			}
			if img, ok := lib.Image(e.Key); ok {
				g.keys = append(g.keys, e.Key)
				g.images = append(g.images, img)
			}
		}
		ebiten.SetWindowSize(512, 512)
		ebiten.SetWindowTitle("assetcheck")
		if err := ebiten.RunGame(g); err != nil {
			log.Fatal(err)
		}
	}

	if len(missing) > 0 {
		os.Exit(1)
	}
}
