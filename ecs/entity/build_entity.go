package entity

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
	"github.com/milk9111/npchit/prefabs"
)

type buildContext struct {
	PrefabPath string
	Resources  Resources
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":     addTransform,
	"sprite":        addSprite,
	"render_layer":  addRenderLayer,
	"screen_anchor": addScreenAnchor,
	"target":        addTarget,
	"hud":           addHUD,
	"audio":         addAudio,
	"music_player":  addMusicPlayer,
}

// target reads the sprite for its size, so it is built after it.
var componentBuildOrder = []string{
	"transform",
	"sprite",
	"render_layer",
	"screen_anchor",
	"target",
	"hud",
	"audio",
	"music_player",
}

func BuildEntity(w *ecs.World, res Resources, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	if res == nil {
		res = FromLibrary(nil)
	}
	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Resources: res}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, unknown[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{
		Key:      spec.Image,
		OriginX:  spec.OriginX,
		OriginY:  spec.OriginY,
		Centered: spec.Centered,
	}
	if spec.Image != "" {
		if img, ok := ctx.Resources.Image(spec.Image); ok {
			sprite.Image = img
		}
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type screenAnchorSpec = prefabs.ScreenAnchorComponentSpec

func addScreenAnchor(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[screenAnchorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode screen anchor spec: %w", err)
	}
	return ecs.Add(w, e, component.ScreenAnchorComponent.Kind(), &component.ScreenAnchor{
		RelX:    spec.RelX,
		RelY:    spec.RelY,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

type targetSpec = prefabs.TargetComponentSpec

func addTarget(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[targetSpec](raw)
	if err != nil {
		return fmt.Errorf("decode target spec: %w", err)
	}

	target := component.Target{Width: spec.FallbackWidth, Height: spec.FallbackHeight}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Key != "" {
		if iw, ih, ok := ctx.Resources.ImageSize(sprite.Key); ok {
			target.Width, target.Height = float64(iw), float64(ih)
		}
	}
	if target.Width <= 0 || target.Height <= 0 {
		return fmt.Errorf("target has no size")
	}
	return ecs.Add(w, e, component.TargetComponent.Kind(), &target)
}

type hudSpec = prefabs.HUDComponentSpec

func addHUD(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hudSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hud spec: %w", err)
	}
	hud := component.HUD{X: spec.X, Y: spec.Y, FontSize: spec.FontSize, Color: color.White}
	if spec.Color != nil && spec.Color.Color != nil {
		hud.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.HUDComponent.Kind(), &hud)
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	audioComp := buildAudioComponent(spec.Clips, ctx.Resources)
	if audioComp == nil {
		return fmt.Errorf("audio has no clips")
	}
	for _, name := range spec.Autoplay {
		i := audioComp.Index(name)
		if i < 0 {
			return fmt.Errorf("autoplay clip %q is not defined", name)
		}
		audioComp.Play[i] = true
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), audioComp)
}

func buildAudioComponent(clips []prefabs.AudioClipSpec, res Resources) *component.Audio {
	n := len(clips)
	if n == 0 {
		return nil
	}

	names := make([]string, 0, n)
	players := make([]component.SoundPlayer, 0, n)
	volume := make([]float64, 0, n)

	for _, clip := range clips {
		player, ok := res.Sound(clip.Name)
		if !ok {
			log.Printf("entity: clip %q has no audio, it will be silent", clip.Name)
		}
		v := clip.Volume
		if v <= 0 {
			v = 1
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, v)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}
}

type musicPlayerSpec = prefabs.MusicPlayerComponentSpec

func addMusicPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[musicPlayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode music player spec: %w", err)
	}
	volumes := make(map[string]float64, len(spec.Tracks))
	for track, v := range spec.Tracks {
		volumes[track] = v
	}
	return ecs.Add(w, e, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{
		Players:      make(map[string]component.SoundPlayer),
		TrackVolumes: volumes,
	})
}
