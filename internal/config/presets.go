package config

import "sort"

// Presets tweak the defaults. Each call builds a fresh Config.
var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"dense": func(c *Config) {
		c.Starfield.Stars = 300
		c.Starfield.Threshold = 80
	},
	"sparse": func(c *Config) {
		c.Starfield.Stars = 40
		c.Starfield.Threshold = 160
		c.Starfield.LinkFalloff = 1600
	},
	"calm": func(c *Config) {
		c.Starfield.MaxSpeed = 0.08
		c.Starfield.Repulsion = 0.01
	},
	"storm": func(c *Config) {
		c.Starfield.Stars = 200
		c.Starfield.MaxSpeed = 1.5
		c.Starfield.Repulsion = 0.06
		c.Starfield.MaxRadius = 2.5
	},
	"terminal": func(c *Config) {
		c.Starfield.Stars = 60
		c.Starfield.Threshold = 30
		c.Starfield.LinkFalloff = 300
		c.Starfield.MaxSpeed = 0.4
		c.Render.Width = 160
		c.Render.Height = 96
		c.Render.FPS = 30
	},
}

// GetPreset returns the named preset applied to the defaults, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
