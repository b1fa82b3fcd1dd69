// Package tilt turns a pointer position over a card into a 3D rotation.
package tilt

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/starfield/internal/geom"
)

const (
	DefaultMaxAngle    = 10.0   // degrees at the card edge
	DefaultPerspective = 1000.0 // px
	DefaultHoverScale  = 1.02
)

// RestTransform is the transform applied when the pointer leaves the card area.
const RestTransform = "perspective(1000px) rotateX(0) rotateY(0) scale3d(1, 1, 1)"

type Card struct {
	MaxAngle    float64
	Perspective float64
	HoverScale  float64

	RotateX, RotateY float64 // degrees
	Scale            float64
}

func New() *Card {
	return &Card{
		MaxAngle:    DefaultMaxAngle,
		Perspective: DefaultPerspective,
		HoverScale:  DefaultHoverScale,
		Scale:       1,
	}
}

// Move tilts the card toward p. Rotation is linear in the offset from the
// card center and reaches MaxAngle at the edges; a degenerate axis stays flat.
func (c *Card) Move(bounds geom.Rect, p geom.Point) {
	x := p.X - bounds.X
	y := p.Y - bounds.Y
	cx := bounds.W / 2
	cy := bounds.H / 2

	c.RotateX = 0
	if cy > 0 {
		c.RotateX = ((y - cy) / cy) * -c.MaxAngle
	}
	c.RotateY = 0
	if cx > 0 {
		c.RotateY = ((x - cx) / cx) * c.MaxAngle
	}
	c.Scale = c.HoverScale
}

func (c *Card) Leave() {
	c.RotateX = 0
	c.RotateY = 0
	c.Scale = 1
}

func (c *Card) Tilted() bool {
	return c.RotateX != 0 || c.RotateY != 0 || c.Scale != 1
}

// Transform renders the CSS transform for the current state.
func (c *Card) Transform() string {
	if !c.Tilted() && c.Perspective == DefaultPerspective {
		return RestTransform
	}
	s := num(c.Scale)
	return fmt.Sprintf("perspective(%spx) rotateX(%sdeg) rotateY(%sdeg) scale3d(%s, %s, %s)",
		num(c.Perspective), num(c.RotateX), num(c.RotateY), s, s, s)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Project returns the corners of bounds (top-left, top-right, bottom-right,
// bottom-left) after scale, rotateY, rotateX, and perspective, in that order
// of application, about the card center.
func (c *Card) Project(bounds geom.Rect) [4]geom.Point {
	center := bounds.Center()
	hw, hh := bounds.W/2, bounds.H/2
	local := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	ax := c.RotateX * math.Pi / 180
	ay := c.RotateY * math.Pi / 180
	sinX, cosX := math.Sin(ax), math.Cos(ax)
	sinY, cosY := math.Sin(ay), math.Cos(ay)

	var out [4]geom.Point
	for i, v := range local {
		x, y, z := v[0]*c.Scale, v[1]*c.Scale, 0.0

		x, z = x*cosY+z*sinY, -x*sinY+z*cosY
		y, z = y*cosX-z*sinX, y*sinX+z*cosX

		if c.Perspective > 0 {
			depth := c.Perspective - z
			if depth < 1 {
				depth = 1
			}
			k := c.Perspective / depth
			x, y = x*k, y*k
		}
		out[i] = geom.Point{X: center.X + x, Y: center.Y + y}
	}
	return out
}
