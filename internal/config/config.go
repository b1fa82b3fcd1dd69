package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/starfield/internal/starfield"
	"github.com/san-kum/starfield/internal/tilt"
)

const (
	DefaultWidth  = 1280.0
	DefaultHeight = 720.0
	DefaultFPS    = 60
	DefaultFrames = 600
	DefaultTheme  = "minimal"
	DefaultVolume = 0.25

	// EnvPrefix is prepended to every environment override, e.g. STARFIELD_STARS.
	EnvPrefix = "STARFIELD_"
)

type Config struct {
	Seed      int64           `yaml:"seed" env:"SEED"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Tilt      TiltConfig      `yaml:"tilt" envPrefix:"TILT_"`
	Render    RenderConfig    `yaml:"render"`
	Audio     AudioConfig     `yaml:"audio" envPrefix:"AUDIO_"`
	Run       RunConfig       `yaml:"run"`
}

type StarfieldConfig struct {
	Stars       int     `yaml:"stars" env:"STARS"`
	Threshold   float64 `yaml:"threshold" env:"THRESHOLD"`
	Repulsion   float64 `yaml:"repulsion" env:"REPULSION"`
	LinkOpacity float64 `yaml:"link_opacity" env:"LINK_OPACITY"`
	LinkFalloff float64 `yaml:"link_falloff" env:"LINK_FALLOFF"`
	LinkWidth   float64 `yaml:"link_width" env:"LINK_WIDTH"`
	MaxSpeed    float64 `yaml:"max_speed" env:"MAX_SPEED"`
	MaxRadius   float64 `yaml:"max_radius" env:"MAX_RADIUS"`
}

type TiltConfig struct {
	MaxAngle    float64 `yaml:"max_angle" env:"MAX_ANGLE"`
	Perspective float64 `yaml:"perspective" env:"PERSPECTIVE"`
	HoverScale  float64 `yaml:"hover_scale" env:"HOVER_SCALE"`
}

type RenderConfig struct {
	Width  float64 `yaml:"width" env:"WIDTH"`
	Height float64 `yaml:"height" env:"HEIGHT"`
	FPS    int     `yaml:"fps" env:"FPS"`
	Theme  string  `yaml:"theme" env:"THEME"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
}

// RunConfig controls headless runs.
type RunConfig struct {
	Frames int `yaml:"frames" env:"FRAMES"`
}

func DefaultConfig() *Config {
	sf := starfield.DefaultConfig()
	return &Config{
		Starfield: StarfieldConfig{
			Stars:       sf.Stars,
			Threshold:   sf.Threshold,
			Repulsion:   sf.Repulsion,
			LinkOpacity: sf.LinkOpacity,
			LinkFalloff: sf.LinkFalloff,
			LinkWidth:   sf.LinkWidth,
			MaxSpeed:    sf.MaxSpeed,
			MaxRadius:   sf.MaxRadius,
		},
		Tilt: TiltConfig{
			MaxAngle:    tilt.DefaultMaxAngle,
			Perspective: tilt.DefaultPerspective,
			HoverScale:  tilt.DefaultHoverScale,
		},
		Render: RenderConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Theme:  DefaultTheme,
		},
		Audio: AudioConfig{Volume: DefaultVolume},
		Run:   RunConfig{Frames: DefaultFrames},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over cfg, so a preset can sit underneath it.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from STARFIELD_* environment variables. Unset
// variables leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) StarfieldConfig() starfield.Config {
	return starfield.Config{
		Stars:       c.Starfield.Stars,
		Threshold:   c.Starfield.Threshold,
		Repulsion:   c.Starfield.Repulsion,
		LinkOpacity: c.Starfield.LinkOpacity,
		LinkFalloff: c.Starfield.LinkFalloff,
		LinkWidth:   c.Starfield.LinkWidth,
		MaxSpeed:    c.Starfield.MaxSpeed,
		MaxRadius:   c.Starfield.MaxRadius,
	}
}

func (c *Config) TiltCard() *tilt.Card {
	card := tilt.New()
	card.MaxAngle = c.Tilt.MaxAngle
	card.Perspective = c.Tilt.Perspective
	card.HoverScale = c.Tilt.HoverScale
	return card
}

func (c *Config) Validate() error {
	if err := c.StarfieldConfig().Validate(); err != nil {
		return err
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %gx%g", c.Render.Width, c.Render.Height)
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Render.FPS)
	}
	return nil
}
