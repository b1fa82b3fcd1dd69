package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/starfield/internal/geom"
	"github.com/san-kum/starfield/internal/viz"
)

const (
	dotRadius     = 4
	outlineRadius = 20
	ringWidth     = 1.5
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

var navLabels = []string{"home", "work", "about"}

type palette struct {
	bg, star, accent, text, muted rl.Color
}

func newPalette(t viz.Theme) palette {
	return palette{
		bg:     ColBg,
		star:   hexColor(string(t.Stars)),
		accent: hexColor(string(t.Accent)),
		text:   hexColor(string(t.Text)),
		muted:  hexColor(string(t.Muted)),
	}
}

// hexColor parses "#rrggbb"; anything else is white.
func hexColor(s string) rl.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return rl.White
	}
	return rl.NewColor(r, g, b, 255)
}

func vec(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// Surface draws starfield frames with raylib primitives. It must be used
// between BeginDrawing and EndDrawing.
type Surface struct {
	bg, star, link rl.Color
}

func NewSurface(p palette) *Surface {
	s := &Surface{}
	s.setPalette(p)
	return s
}

func (s *Surface) setPalette(p palette) {
	s.bg, s.star, s.link = p.bg, p.star, p.star
}

func (s *Surface) Clear(width, height float64) {
	rl.ClearBackground(s.bg)
}

func (s *Surface) FillCircle(x, y, radius, alpha float64) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(radius), rl.ColorAlpha(s.star, float32(alpha)))
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width, alpha float64) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x0), float32(y0)),
		rl.NewVector2(float32(x1), float32(y1)),
		float32(width),
		rl.ColorAlpha(s.link, float32(alpha)),
	)
}

// drawCard fills the projected card quad, outlines it, and places the title
// at its projected top-left corner.
func (a *App) drawCard() {
	if a.scene.Card == nil {
		return
	}

	c := a.scene.Card.Project(a.page.Card.Bounds())
	v := [4]rl.Vector2{vec(c[0]), vec(c[1]), vec(c[2]), vec(c[3])}

	fill := rl.ColorAlpha(a.colors.text, 0.06)
	rl.DrawTriangle(v[0], v[3], v[2], fill)
	rl.DrawTriangle(v[0], v[2], v[1], fill)

	edge := rl.ColorAlpha(a.colors.text, 0.25)
	for i := range v {
		rl.DrawLineEx(v[i], v[(i+1)%4], 1, edge)
	}

	a.drawText("starfield", v[0].X+28, v[0].Y+28, 28, a.colors.text)
	a.drawText("move the pointer", v[0].X+28, v[0].Y+66, 16, a.colors.muted)

	b := a.page.Button.Bounds()
	rect := rl.NewRectangle(float32(b.X), float32(b.Y), float32(b.W), float32(b.H))
	col := a.colors.muted
	if b.Contains(a.pointer) && a.onScreen {
		col = a.colors.accent
	}
	rl.DrawRectangleLinesEx(rect, 1, col)
	a.drawText("explore", rect.X+36, rect.Y+11, 18, col)
}

func (a *App) drawNav() {
	for i, l := range a.page.Links {
		b := l.Bounds()
		col := a.colors.muted
		if b.Contains(a.pointer) && a.onScreen {
			col = a.colors.accent
		}
		a.drawText(navLabels[i%len(navLabels)], float32(b.X)+16, float32(b.Y)+6, 16, col)
	}
}

// drawCursor renders the outline with its hover style, then the dot on top.
func (a *App) drawCursor() {
	f := a.scene.Cursor
	if f == nil || !a.onScreen {
		return
	}

	st := f.Style()
	r := float32(outlineRadius * st.Scale)
	center := vec(f.Outline)
	if st.Background != "transparent" {
		rl.DrawCircleV(center, r, rl.ColorAlpha(a.colors.accent, 0.1))
	}
	if st.Border != "transparent" {
		rl.DrawRing(center, r-ringWidth, r, 0, 360, 48, a.colors.accent)
	}
	rl.DrawCircleV(vec(f.Dot), dotRadius, a.colors.accent)
}

func (a *App) drawHUD() {
	lines := []string{
		fmt.Sprintf("%d FPS", rl.GetFPS()),
		fmt.Sprintf("frame %d", a.stats.Frame),
		fmt.Sprintf("links %d", a.stats.Links),
		fmt.Sprintf("repelled %d", a.stats.Repelled),
	}
	if a.scene.Field != nil {
		lines = append(lines, fmt.Sprintf("stars %d", a.scene.Field.Len()))
	}
	for i, s := range lines {
		a.drawText(s, 24, float32(24+i*18), 14, a.colors.muted)
	}

	if a.synth != nil {
		a.drawBands(24, float32(24+len(lines)*18+8))
	}

	status := "space pause  t theme  h hud  q quit"
	if a.synth != nil {
		status += "  m mute"
	}
	if a.paused {
		status = "PAUSED  " + status
	}
	a.drawText(status, 24, float32(rl.GetScreenHeight()-36), 14, ColTextDim)
}

// drawBands shows the pad's bass/mid/high levels as three bars.
func (a *App) drawBands(x, y float32) {
	b := a.synth.Bands()
	const barW, barH = 80, 6
	for i, v := range []float64{b.Bass, b.Mid, b.High} {
		by := y + float32(i)*(barH+4)
		rl.DrawRectangleRec(rl.NewRectangle(x, by, barW, barH), ColTextDim)
		rl.DrawRectangleRec(rl.NewRectangle(x, by, barW*float32(v), barH), a.colors.accent)
	}
	if a.muted {
		a.drawText("muted", x+barW+8, y, 14, a.colors.muted)
	}
}

func (a *App) drawText(text string, x, y, size float32, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(x, y), size, 1, color)
}
