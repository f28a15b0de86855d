package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/ecs/component"
)

const (
	defaultMusicVolume     = 1.0
	defaultMusicFadeFrames = 30
)

// TrackLoader opens a player for a music track key.
type TrackLoader func(track string) (component.SoundPlayer, error)

type MusicSystem struct {
	load TrackLoader
}

func NewMusicSystem(load TrackLoader) *MusicSystem {
	return &MusicSystem{load: load}
}

func RequestMusic(w *ecs.World, track string) {
	RequestMusicWithOptions(w, &component.MusicRequest{Track: track, Loop: true, FadeOutFrames: defaultMusicFadeFrames})
}

func RequestMusicWithOptions(w *ecs.World, req *component.MusicRequest) {
	if w == nil || req == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), req)
}

func StopMusic(w *ecs.World) {
	RequestMusicWithOptions(w, &component.MusicRequest{FadeOutFrames: defaultMusicFadeFrames})
}

// ToggleMusic fades the music out, or brings track back if it was muted.
func ToggleMusic(w *ecs.World, track string) {
	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player.Muted = !player.Muted
	if player.Muted {
		StopMusic(w)
		return
	}
	RequestMusic(w, track)
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	latest, requestEntities := m.consumeLatestRequest(w)
	for _, ent := range requestEntities {
		ecs.DestroyEntity(w, ent)
	}

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	if player.Players == nil {
		player.Players = make(map[string]component.SoundPlayer)
	}
	if player.TrackVolumes == nil {
		player.TrackVolumes = make(map[string]float64)
	}

	if latest != nil {
		m.applyRequest(player, *latest)
	}

	if player.PendingActive {
		m.updateTransition(player)
		return
	}

	current := m.currentPlayer(player)
	if current != nil && !current.IsPlaying() && player.CurrentLoop {
		_ = current.Rewind()
		current.SetVolume(player.CurrentVolume)
		current.Play()
	}
}

func (m *MusicSystem) consumeLatestRequest(w *ecs.World) (*component.MusicRequest, []ecs.Entity) {
	var latest *component.MusicRequest
	var requestEntities []ecs.Entity

	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ent ecs.Entity, req *component.MusicRequest) {
		requestEntities = append(requestEntities, ent)
		copied := *req
		latest = &copied
	})

	return latest, requestEntities
}

func (m *MusicSystem) applyRequest(player *component.MusicPlayer, req component.MusicRequest) {
	track := strings.TrimSpace(req.Track)
	volume := req.Volume
	if volume <= 0 {
		if v, ok := player.TrackVolumes[track]; ok && v > 0 {
			volume = v
		} else {
			volume = defaultMusicVolume
		}
	}
	volume = min(volume, 1)
	fadeFrames := req.FadeOutFrames
	if fadeFrames <= 0 {
		fadeFrames = defaultMusicFadeFrames
	}

	current := m.currentPlayer(player)
	if track == "" {
		player.PendingActive = false
		if current == nil {
			player.CurrentTrack = ""
			player.CurrentVolume = 0
			player.CurrentLoop = false
			return
		}
		player.PendingTrack = ""
		player.PendingVolume = 0
		player.PendingLoop = false
		player.PendingActive = true
		player.FadeStep = fadeStep(player.CurrentVolume, fadeFrames)
		return
	}

	if !player.PendingActive && player.CurrentTrack == track && current != nil {
		player.CurrentVolume = volume
		player.CurrentLoop = req.Loop
		current.SetVolume(volume)
		if !current.IsPlaying() {
			_ = current.Rewind()
			current.Play()
		}
		return
	}

	player.PendingTrack = track
	player.PendingVolume = volume
	player.PendingLoop = req.Loop
	player.PendingActive = true
	if current == nil {
		m.switchToPending(player)
		return
	}
	player.FadeStep = fadeStep(player.CurrentVolume, fadeFrames)
}

func fadeStep(volume float64, frames int) float64 {
	step := volume / float64(frames)
	if step <= 0 {
		return 1
	}
	return step
}

func (m *MusicSystem) updateTransition(player *component.MusicPlayer) {
	current := m.currentPlayer(player)
	if current == nil {
		m.switchToPending(player)
		return
	}

	player.CurrentVolume -= player.FadeStep
	if player.CurrentVolume > 0 {
		current.SetVolume(player.CurrentVolume)
		return
	}

	player.CurrentVolume = 0
	current.SetVolume(0)
	current.Pause()
	_ = current.Rewind()
	player.CurrentTrack = ""
	player.CurrentLoop = false
	m.switchToPending(player)
}

func (m *MusicSystem) switchToPending(player *component.MusicPlayer) {
	if !player.PendingActive {
		return
	}

	track := strings.TrimSpace(player.PendingTrack)
	volume := player.PendingVolume
	loop := player.PendingLoop

	player.PendingTrack = ""
	player.PendingVolume = 0
	player.PendingLoop = false
	player.PendingActive = false
	player.FadeStep = 0

	if track == "" {
		player.CurrentTrack = ""
		player.CurrentVolume = 0
		player.CurrentLoop = false
		return
	}

	audioPlayer, err := m.playerForTrack(player, track)
	if err != nil {
		log.Printf("music: load %q: %v", track, err)
		player.CurrentTrack = ""
		player.CurrentVolume = 0
		player.CurrentLoop = false
		return
	}

	player.CurrentTrack = track
	player.CurrentVolume = volume
	player.CurrentLoop = loop
	_ = audioPlayer.Rewind()
	audioPlayer.SetVolume(volume)
	audioPlayer.Play()
}

func (m *MusicSystem) currentPlayer(player *component.MusicPlayer) component.SoundPlayer {
	if strings.TrimSpace(player.CurrentTrack) == "" {
		return nil
	}
	return player.Players[player.CurrentTrack]
}

func (m *MusicSystem) playerForTrack(player *component.MusicPlayer, track string) (component.SoundPlayer, error) {
	if existing, ok := player.Players[track]; ok && existing != nil {
		return existing, nil
	}
	if m.load == nil {
		return nil, fmt.Errorf("no track loader")
	}
	audioPlayer, err := m.load(track)
	if err != nil {
		return nil, err
	}
	if audioPlayer == nil {
		return nil, fmt.Errorf("track %q has no player", track)
	}
	player.Players[track] = audioPlayer
	return audioPlayer, nil
}
