package starfield

import (
	"math"
	"math/rand"
)

// Star is a single particle. Radius and Alpha never change after creation.
type Star struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

func newStar(rng *rand.Rand, width, height float64, cfg Config) Star {
	return Star{
		X:      rng.Float64() * width,
		Y:      rng.Float64() * height,
		VX:     (rng.Float64() - 0.5) * 2 * cfg.MaxSpeed,
		VY:     (rng.Float64() - 0.5) * 2 * cfg.MaxSpeed,
		Radius: rng.Float64() * cfg.MaxRadius,
		Alpha:  rng.Float64(),
	}
}

// wrap folds v into [0, size). A non-positive size collapses to 0.
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// v+size can round up to size for tiny negative v
	if v >= size {
		v = 0
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
