package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/starfield/internal/viz"
)

const (
	Background = "#0a0a0a"
	StarColor  = "#ffffff"
	LinkColor  = "#ffffff"
)

// SVG is a starfield.Surface that records one frame as SVG markup. Each Clear
// starts a new document, so after a Frame call the builder holds exactly that
// frame.
type SVG struct {
	Background string
	Star       string
	Link       string

	width, height float64
	stars         strings.Builder
	links         strings.Builder
	elements      int
}

func NewSVG() *SVG {
	return &SVG{Background: Background, Star: StarColor, Link: LinkColor}
}

func (s *SVG) Clear(width, height float64) {
	s.width, s.height = width, height
	s.stars.Reset()
	s.links.Reset()
	s.elements = 0
}

func (s *SVG) FillCircle(x, y, radius, alpha float64) {
	fmt.Fprintf(&s.stars, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill-opacity="%.3f"/>`+"\n", x, y, radius, alpha)
	s.elements++
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width, alpha float64) {
	fmt.Fprintf(&s.links, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="%.2f" stroke-opacity="%.3f"/>`+"\n",
		x0, y0, x1, y1, width, alpha)
	s.elements++
}

// Elements is the number of circles and lines in the current frame.
func (s *SVG) Elements() int { return s.elements }

// String returns the recorded frame. Links sit under stars.
func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.width, s.height, s.width, s.height, s.Background)

	fmt.Fprintf(&sb, "<g stroke=\"%s\" fill=\"none\">\n", s.Link)
	sb.WriteString(s.links.String())
	sb.WriteString("</g>\n")

	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", s.Star)
	sb.WriteString(s.stars.String())
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64, color string) string {
	if canvas == nil {
		return ""
	}

	dotsW, dotsH := canvas.Dots()
	width := float64(dotsW) * scale
	height := float64(dotsH) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, Background, color)

	dotRadius := scale * 0.4
	for y := 0; y < dotsH; y++ {
		for x := 0; x < dotsW; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline scaled to width x height, with 10%
// vertical padding. Fewer than two values yield an empty string.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, Background, strokeColor)

	step := float64(width) / float64(len(values)-1)
	for i, v := range values {
		x := float64(i) * step
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
