package starfield

import "math"

// linkChunk is the number of rows below which the link scan stays serial.
const linkChunk = 256

// Link connects two stars closer than the proximity threshold. I < J always.
type Link struct {
	I, J     int
	Distance float64
	Opacity  float64
}

// LineOpacity returns the connection-line opacity for two stars d apart.
// The raw value goes negative past LinkOpacity*LinkFalloff; it is clamped here
// rather than left to the surface.
func (c Config) LineOpacity(d float64) float64 {
	return clamp01(c.LinkOpacity - d/c.LinkFalloff)
}

// links returns every pair closer than the threshold, ordered by (I, J).
func links(stars []Star, cfg Config) []Link {
	n := len(stars)
	if n < 2 {
		return nil
	}

	rows := make([][]Link, n)
	parallelFor(n, linkChunk, func(start, end int) {
		for i := start; i < end; i++ {
			a := stars[i]
			for j := i + 1; j < n; j++ {
				b := stars[j]
				d := math.Hypot(a.X-b.X, a.Y-b.Y)
				if d < cfg.Threshold {
					rows[i] = append(rows[i], Link{I: i, J: j, Distance: d, Opacity: cfg.LineOpacity(d)})
				}
			}
		}
	})

	total := 0
	for _, r := range rows {
		total += len(r)
	}
	out := make([]Link, 0, total)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
