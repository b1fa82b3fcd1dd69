package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	stars  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	paused lipgloss.Style
	hint   lipgloss.Style
	graph  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		stars:  lipgloss.NewStyle().Foreground(t.Stars),
		label:  lipgloss.NewStyle().Foreground(t.Muted),
		value:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		paused: lipgloss.NewStyle().Foreground(t.Warn).Bold(true),
		hint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		graph:  lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// Sparkline renders the last width values as block characters.
func Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - min) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}
