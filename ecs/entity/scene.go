package entity

import (
	"fmt"

	"github.com/milk9111/npchit/ecs"
)

func NewBackground(w *ecs.World, res Resources) (ecs.Entity, error) {
	ent, err := BuildEntity(w, res, "background.yaml")
	if err != nil {
		return 0, fmt.Errorf("background: %w", err)
	}
	return ent, nil
}

// NewNPC builds the hit target. It stays on screen in every round state.
func NewNPC(w *ecs.World, res Resources) (ecs.Entity, error) {
	ent, err := BuildEntity(w, res, "npc.yaml")
	if err != nil {
		return 0, fmt.Errorf("npc: %w", err)
	}
	return ent, nil
}

func NewHUD(w *ecs.World, res Resources) (ecs.Entity, error) {
	ent, err := BuildEntity(w, res, "hud.yaml")
	if err != nil {
		return 0, fmt.Errorf("hud: %w", err)
	}
	return ent, nil
}

// NewSoundBank builds the entity holding the hit and button clips.
func NewSoundBank(w *ecs.World, res Resources) (ecs.Entity, error) {
	ent, err := BuildEntity(w, res, "sounds.yaml")
	if err != nil {
		return 0, fmt.Errorf("sounds: %w", err)
	}
	return ent, nil
}

func NewMusicPlayer(w *ecs.World, res Resources) (ecs.Entity, error) {
	ent, err := BuildEntity(w, res, "music_player.yaml")
	if err != nil {
		return 0, fmt.Errorf("music player: %w", err)
	}
	return ent, nil
}

// NewScene builds every entity the game starts with.
func NewScene(w *ecs.World, res Resources) error {
	builders := []func(*ecs.World, Resources) (ecs.Entity, error){
		NewBackground,
		NewNPC,
		NewHUD,
		NewSoundBank,
		NewMusicPlayer,
	}
	for _, build := range builders {
		if _, err := build(w, res); err != nil {
			return err
		}
	}
	return nil
}
