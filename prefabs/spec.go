package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	GameSpecFile = "game.yaml"

	defaultRoundDurationMS  = 60000
	defaultMarkerLifetimeMS = 900
	defaultMarkerLayer      = 20
	defaultWindowTitle      = "npchit"
	defaultStartLabel       = "Start"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the top-level tuning file.
type GameSpec struct {
	Window      WindowSpec      `yaml:"window"`
	Round       RoundSpec       `yaml:"round"`
	Marker      MarkerSpec      `yaml:"marker"`
	Music       MusicSpec       `yaml:"music"`
	StartButton StartButtonSpec `yaml:"start_button"`
	Assets      []AssetSpec     `yaml:"assets"`
}

type WindowSpec struct {
	Title string `yaml:"title"`
}

type RoundSpec struct {
	DurationMS int `yaml:"duration_ms"`
}

type MarkerSpec struct {
	LifetimeMS int    `yaml:"lifetime_ms"`
	Layer      int    `yaml:"layer"`
	LeftImage  string `yaml:"left_image"`
	RightImage string `yaml:"right_image"`
	HitSound   string `yaml:"hit_sound"`
}

type MusicSpec struct {
	Track  string  `yaml:"track"`
	Volume float64 `yaml:"volume"`
}

type StartButtonSpec struct {
	Label     string     `yaml:"label"`
	Sound     string     `yaml:"sound"`
	FontSize  float64    `yaml:"font_size"`
	Color     *YAMLColor `yaml:"color"`
	TextColor *YAMLColor `yaml:"text_color"`
}

// AssetSpec is one manifest entry. Kind is "image" or "audio".
type AssetSpec struct {
	Kind string `yaml:"kind"`
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
}

func LoadGameSpec(filename string) (*GameSpec, error) {
	if filename == "" {
		filename = GameSpecFile
	}
	spec, err := LoadSpec[GameSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	return &spec, nil
}

// ApplyDefaults fills zero values.
func (s *GameSpec) ApplyDefaults() {
	if s.Window.Title == "" {
		s.Window.Title = defaultWindowTitle
	}
	if s.Round.DurationMS <= 0 {
		s.Round.DurationMS = defaultRoundDurationMS
	}
	if s.Marker.LifetimeMS <= 0 {
		s.Marker.LifetimeMS = defaultMarkerLifetimeMS
	}
	if s.Marker.Layer == 0 {
		s.Marker.Layer = defaultMarkerLayer
	}
	if s.Marker.LeftImage == "" {
		s.Marker.LeftImage = "leftHit"
	}
	if s.Marker.RightImage == "" {
		s.Marker.RightImage = "rightHit"
	}
	if s.Marker.HitSound == "" {
		s.Marker.HitSound = "hitSound"
	}
	if s.Music.Volume <= 0 || s.Music.Volume > 1 {
		s.Music.Volume = 1
	}
	if s.StartButton.Label == "" {
		s.StartButton.Label = defaultStartLabel
	}
	if s.StartButton.FontSize <= 0 {
		s.StartButton.FontSize = 24
	}
	if s.StartButton.Color == nil {
		s.StartButton.Color = &YAMLColor{Color: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}}
	}
	if s.StartButton.TextColor == nil {
		s.StartButton.TextColor = &YAMLColor{Color: colornames.White}
	}
}

func (s *GameSpec) RoundDuration() time.Duration {
	return time.Duration(s.Round.DurationMS) * time.Millisecond
}

func (s *GameSpec) MarkerLifetime() time.Duration {
	return time.Duration(s.Marker.LifetimeMS) * time.Millisecond
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
