package starfield

const (
	DefaultStars       = 100
	DefaultThreshold   = 100.0
	DefaultRepulsion   = 0.02
	DefaultLinkOpacity = 0.1
	DefaultLinkFalloff = 1000.0
	DefaultLinkWidth   = 0.5
	DefaultMaxSpeed    = 0.25
	DefaultMaxRadius   = 1.5
)

// Config tunes a Field. Distances are canvas pixels, speeds pixels per frame.
type Config struct {
	Stars     int
	Threshold float64 // proximity below which repulsion and links kick in
	Repulsion float64 // fraction of the pointer displacement applied per frame

	// Link opacity is LinkOpacity - d/LinkFalloff, clamped to [0, 1].
	LinkOpacity float64
	LinkFalloff float64
	LinkWidth   float64

	MaxSpeed  float64 // per-axis velocity is drawn from [-MaxSpeed, MaxSpeed)
	MaxRadius float64
}

func DefaultConfig() Config {
	return Config{
		Stars:       DefaultStars,
		Threshold:   DefaultThreshold,
		Repulsion:   DefaultRepulsion,
		LinkOpacity: DefaultLinkOpacity,
		LinkFalloff: DefaultLinkFalloff,
		LinkWidth:   DefaultLinkWidth,
		MaxSpeed:    DefaultMaxSpeed,
		MaxRadius:   DefaultMaxRadius,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Stars < 0:
		return &ConfigError{Field: "stars", Value: float64(c.Stars)}
	case c.Threshold <= 0:
		return &ConfigError{Field: "threshold", Value: c.Threshold}
	case c.LinkFalloff <= 0:
		return &ConfigError{Field: "link_falloff", Value: c.LinkFalloff}
	case c.MaxSpeed < 0:
		return &ConfigError{Field: "max_speed", Value: c.MaxSpeed}
	case c.MaxRadius < 0:
		return &ConfigError{Field: "max_radius", Value: c.MaxRadius}
	}
	return nil
}
