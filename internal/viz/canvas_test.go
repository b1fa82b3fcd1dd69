package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 in first cell, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8 in second cell, got %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(1, 1) {
		t.Error("IsSet disagrees with Set")
	}

	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)

	c.Clear()
	if strings.Trim(c.String(), "⠀") != "" {
		t.Errorf("clear left dots behind: %q", c.String())
	}
}

func TestCanvasDots(t *testing.T) {
	c := NewCanvas(10, 5)
	w, h := c.Dots()
	if w != 20 || h != 20 {
		t.Errorf("expected 20x20 dots, got %dx%d", w, h)
	}

	c.Resize(-3, 2)
	if c.Width != 0 || len(c.Grid) != 2 {
		t.Errorf("negative width not clamped: %d", c.Width)
	}
}

func TestDrawLineStride(t *testing.T) {
	count := func(stride int) int {
		c := NewCanvas(10, 1)
		c.DrawLine(0, 0, 19, 0, stride)
		n := 0
		for x := 0; x < 20; x++ {
			if c.IsSet(x, 0) {
				n++
			}
		}
		return n
	}

	if got := count(1); got != 20 {
		t.Errorf("solid line lit %d dots, want 20", got)
	}
	if got := count(4); got != 5 {
		t.Errorf("stride 4 lit %d dots, want 5", got)
	}
	if got := count(0); got != 20 {
		t.Errorf("stride 0 should act as solid, lit %d", got)
	}
}

func TestSurface(t *testing.T) {
	c := NewCanvas(10, 5)
	s := NewSurface(c)

	s.FillCircle(4.7, 6.2, 0.5, 0.9)
	if !c.IsSet(4, 6) {
		t.Error("star not plotted at its floor position")
	}

	s.FillCircle(10, 10, 1.2, 0.9)
	for _, p := range [][2]int{{10, 10}, {11, 10}, {10, 11}, {11, 11}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("large star missing dot %v", p)
		}
	}

	s.FillCircle(2, 2, 1, 0.01)
	if c.IsSet(2, 2) {
		t.Error("star below MinAlpha should be skipped")
	}

	s.Clear(20, 20)
	s.StrokeLine(0, 0, 5, 0, 0.5, 0)
	if c.IsSet(0, 0) {
		t.Error("zero-alpha line should not draw")
	}
}

func TestLineStride(t *testing.T) {
	tests := []struct {
		alpha, solid float64
		want         int
	}{
		{0.1, 0.08, 1},
		{0.08, 0.08, 1},
		{0.05, 0.08, 2},
		{0.001, 0.08, 8},
		{0.05, 0, 1},
	}
	for _, tt := range tests {
		if got := lineStride(tt.alpha, tt.solid); got != tt.want {
			t.Errorf("lineStride(%v, %v) = %d, want %d", tt.alpha, tt.solid, got, tt.want)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 4); got != "────" {
		t.Errorf("empty sparkline = %q", got)
	}
	if got := Sparkline([]float64{0, 7}, 4); got != "▁█" {
		t.Errorf("sparkline = %q", got)
	}
	if got := []rune(Sparkline([]float64{1, 2, 3, 4, 5, 6}, 3)); len(got) != 3 {
		t.Errorf("sparkline not trimmed to width: %q", string(got))
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "minimal" {
		t.Error("unknown theme should fall back to minimal")
	}
	last := Themes[len(Themes)-1]
	if NextTheme(last).Name != Themes[0].Name {
		t.Error("NextTheme should wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}
