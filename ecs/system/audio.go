package system

import (
	"log"

	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

// PlaySound flags the clip called name for playback on the next audio
// update. It reports whether any audio bank has such a clip.
func PlaySound(w *ecs.World, name string) bool {
	if w == nil || name == "" {
		return false
	}
	found := false
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		if i := a.Index(name); i >= 0 && i < len(a.Play) {
			a.Play[i] = true
			found = true
		}
	})
	return found
}

// StopSound flags the clip called name to be paused.
func StopSound(w *ecs.World, name string) bool {
	if w == nil || name == "" {
		return false
	}
	found := false
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		if i := a.Index(name); i >= 0 && i < len(a.Stop) {
			a.Stop[i] = true
			found = true
		}
	})
	return found
}

// Update restarts every clip flagged to play and pauses every clip flagged
// to stop. A clip replayed while still sounding starts over.
func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Names), len(audioComp.Players), len(audioComp.Play), len(audioComp.Stop), len(audioComp.Volume))

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := audioComp.Players[i]
			if player == nil {
				continue
			}
			player.SetVolume(audioComp.Volume[i])
			if err := player.Rewind(); err != nil {
				log.Printf("audio: rewind %q: %v", audioComp.Names[i], err)
			}
			player.Play()
		}

		for i := 0; i < count; i++ {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}
		}
	})
}
