package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells. Each cell holds 2x4 sub-pixels, so the
// drawable area is (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
}

// Dots returns the drawable size in sub-pixels.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawLine draws a Bresenham line, lighting every stride-th dot.
func (c *Canvas) DrawLine(x0, y0, x1, y1, stride int) {
	if stride < 1 {
		stride = 1
	}
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for n := 0; ; n++ {
		if n%stride == 0 {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Surface draws starfield frames onto a Canvas. One field pixel maps to one
// braille dot. Braille has no opacity, so faint lines are drawn dotted: a line
// at SolidAlpha or above is solid, fainter ones skip proportionally more dots.
type Surface struct {
	Canvas     *Canvas
	SolidAlpha float64
	MinAlpha   float64 // stars fainter than this are not drawn
}

func NewSurface(c *Canvas) *Surface {
	return &Surface{Canvas: c, SolidAlpha: 0.08, MinAlpha: 0.05}
}

func (s *Surface) Clear(width, height float64) {
	s.Canvas.Clear()
}

func (s *Surface) FillCircle(x, y, radius, alpha float64) {
	if alpha < s.MinAlpha {
		return
	}
	px, py := int(math.Floor(x)), int(math.Floor(y))
	s.Canvas.Set(px, py)
	if radius >= 1 {
		s.Canvas.Set(px+1, py)
		s.Canvas.Set(px, py+1)
		s.Canvas.Set(px+1, py+1)
	}
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width, alpha float64) {
	if alpha <= 0 {
		return
	}
	s.Canvas.DrawLine(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), lineStride(alpha, s.SolidAlpha))
}

func lineStride(alpha, solid float64) int {
	if alpha >= solid || solid <= 0 {
		return 1
	}
	stride := int(math.Ceil(solid / alpha))
	if stride > 8 {
		stride = 8
	}
	return stride
}
