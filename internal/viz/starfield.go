package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/starfield/internal/anim"
	"github.com/san-kum/starfield/internal/starfield"
)

const (
	statusLines     = 1
	graphHeight     = 4
	graphLines      = graphHeight + 2 // plot rows plus caption
	historyCapacity = 240
)

type TickMsg time.Time

// Model is the bubbletea program showing a starfield in braille cells.
// Mouse motion drives the pointer and losing terminal focus clears it.
type Model struct {
	field     *starfield.Field
	loop      *anim.Loop
	canvas    *Canvas
	theme     Theme
	styles    styles
	fps       int
	running   bool
	showGraph bool
	showHelp  bool
	last      starfield.FrameStats
	links     []float64
	cols      int
	rows      int
}

func NewModel(field *starfield.Field, fps int, theme Theme) Model {
	if fps <= 0 {
		fps = anim.DefaultFPS
	}
	w, h := field.Bounds()
	canvas := NewCanvas(int(w)/2, int(h)/4)

	return Model{
		field:   field,
		loop:    anim.New(field, NewSurface(canvas), nil),
		canvas:  canvas,
		theme:   theme,
		styles:  newStyles(theme),
		fps:     fps,
		running: true,
		links:   make([]float64, 0, historyCapacity),
		cols:    canvas.Width,
		rows:    canvas.Height + statusLines,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "g":
			m.showGraph = !m.showGraph
			m.layout()
		case "?":
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.layout()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionMotion {
			break
		}
		if msg.Y >= m.canvas.Height || msg.X >= m.canvas.Width {
			m.field.PointerLeave()
			break
		}
		// center of the cell in dot coordinates
		m.field.PointerMove(float64(msg.X*2+1), float64(msg.Y*4+2))

	case tea.BlurMsg:
		m.field.PointerLeave()

	case TickMsg:
		if m.running {
			m.last = m.loop.Step()
			m.record(float64(m.last.Links))
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) layout() {
	reserved := statusLines
	if m.showGraph {
		reserved += graphLines
	}
	rows := m.rows - reserved
	if rows < 1 {
		rows = 1
	}
	m.canvas.Resize(m.cols, rows)
	w, h := m.canvas.Dots()
	m.field.Resize(float64(w), float64(h))
}

func (m *Model) record(v float64) {
	if len(m.links) == historyCapacity {
		copy(m.links, m.links[1:])
		m.links = m.links[:historyCapacity-1]
	}
	m.links = append(m.links, v)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.stars.Render(m.canvas.String()))
	b.WriteByte('\n')

	if m.showGraph && len(m.links) > 1 {
		width := m.cols - 10
		if width < 10 {
			width = 10
		}
		plot := asciigraph.Plot(m.links,
			asciigraph.Height(graphHeight),
			asciigraph.Width(width),
			asciigraph.Caption("links per frame"))
		b.WriteString(m.styles.graph.Render(plot))
		b.WriteByte('\n')
	}

	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	if m.showHelp {
		return m.styles.hint.Render("space pause · t theme · g graph · move mouse to repel · q quit")
	}

	kv := func(label string, v any) string {
		return m.styles.label.Render(label+" ") + m.styles.value.Render(fmt.Sprint(v))
	}
	parts := []string{
		kv("frame", m.last.Frame),
		kv("stars", m.field.Len()),
		kv("links", m.last.Links),
		kv("repelled", m.last.Repelled),
		m.styles.graph.Render(Sparkline(m.links, 20)),
	}
	if !m.running {
		parts = append(parts, m.styles.paused.Render("PAUSED"))
	}
	parts = append(parts, m.styles.hint.Render("? keys"))
	return strings.Join(parts, "  ")
}

// Run starts the terminal program and blocks until the user quits.
func Run(field *starfield.Field, fps int, theme Theme) error {
	p := tea.NewProgram(NewModel(field, fps, theme),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
