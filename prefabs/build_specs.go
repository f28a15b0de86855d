package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is an entity prefab: a name and a map of component name to
// component spec. Component specs are decoded by the entity builders.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image    string  `yaml:"image"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
	Centered bool    `yaml:"centered"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type ScreenAnchorComponentSpec struct {
	RelX    float64 `yaml:"rel_x"`
	RelY    float64 `yaml:"rel_y"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// TargetComponentSpec sizes the hit box. When the entity has a loaded sprite
// the image bounds win; the fallback covers a missing texture.
type TargetComponentSpec struct {
	FallbackWidth  float64 `yaml:"fallback_width"`
	FallbackHeight float64 `yaml:"fallback_height"`
}

type HUDComponentSpec struct {
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	FontSize float64    `yaml:"font_size"`
	Color    *YAMLColor `yaml:"color"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips    []AudioClipSpec `yaml:"clips"`
	Autoplay []string        `yaml:"autoplay"`
}

type MusicPlayerComponentSpec struct {
	Tracks map[string]float64 `yaml:"tracks"`
}
