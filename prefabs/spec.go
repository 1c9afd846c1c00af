package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jblob-devs/rymech-sub001/serpent"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
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

// SerpentSpec describes a serpent boss. Tuning fields left out of the file
// fall back to serpent.DefaultTuning.
type SerpentSpec struct {
	Name          string         `yaml:"name"`
	Health        float64        `yaml:"health"`
	Size          float64        `yaml:"size"`
	ContactDamage float64        `yaml:"contact_damage"`
	BreathDamage  float64        `yaml:"breath_damage"`
	Script        string         `yaml:"script"`
	BodyColor     YAMLColor      `yaml:"body_color"`
	TendrilColor  YAMLColor      `yaml:"tendril_color"`
	Tuning        serpent.Tuning `yaml:"tuning"`
}

func LoadSerpentSpec() (*SerpentSpec, error) {
	spec, err := LoadSpec[SerpentSpec]("serpent.yaml")
	if err != nil {
		return nil, err
	}
	spec.Tuning = spec.Tuning.WithDefaults()
	return &spec, nil
}

type PlayerSpec struct {
	Name        string  `yaml:"name"`
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	Health      float64 `yaml:"health"`
	IFrames     int     `yaml:"iframes"`
	DebugDamage float64 `yaml:"debug_damage"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ArenaSpec lays out the fight: bounds, spawn points and the camera.
type ArenaSpec struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	PlayerSpawn  PointSpec  `yaml:"player_spawn"`
	SerpentSpawn PointSpec  `yaml:"serpent_spawn"`
	Camera       CameraSpec `yaml:"camera"`
	Background   YAMLColor  `yaml:"background"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name such as
// "darkolivegreen".
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

// ParseColor parses a hex or named color. Hex alpha is straight, the result
// is premultiplied.
func ParseColor(raw string) (color.RGBA, error) {
	v := strings.TrimSpace(raw)
	if named, ok := colornames.Map[strings.ToLower(v)]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", raw)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color format: %s", raw)
		}
		ch[i] = uint8(n)
	}

	nrgba := color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
