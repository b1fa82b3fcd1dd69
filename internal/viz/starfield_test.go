package viz

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/starfield/internal/starfield"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := starfield.DefaultConfig()
	cfg.Stars = 30
	cfg.Threshold = 20
	f, err := starfield.New(cfg, 80, 40, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(f, 30, ThemeMinimal)
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSizesCanvasFromField(t *testing.T) {
	m := newTestModel(t)
	if m.canvas.Width != 40 || m.canvas.Height != 10 {
		t.Errorf("expected 40x10 cells, got %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestModelWindowResize(t *testing.T) {
	m := update(newTestModel(t), tea.WindowSizeMsg{Width: 60, Height: 21})

	if m.canvas.Width != 60 || m.canvas.Height != 20 {
		t.Errorf("expected 60x20 cells, got %dx%d", m.canvas.Width, m.canvas.Height)
	}
	w, h := m.field.Bounds()
	if w != 120 || h != 80 {
		t.Errorf("field not resized to dots: %vx%v", w, h)
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.canvas.Height != 20-graphLines {
		t.Errorf("graph should take %d rows, canvas has %d", graphLines, m.canvas.Height)
	}
}

func TestModelMouseDrivesPointer(t *testing.T) {
	m := update(newTestModel(t), tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion})

	x, y, ok := m.field.Pointer()
	if !ok || x != 7 || y != 10 {
		t.Errorf("pointer = (%v, %v, %v), want (7, 10, true)", x, y, ok)
	}

	m = update(m, tea.BlurMsg{})
	if _, _, ok := m.field.Pointer(); ok {
		t.Error("blur should clear the pointer")
	}

	m = update(m, tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion})
	m = update(m, tea.MouseMsg{X: 3, Y: 50, Action: tea.MouseActionMotion})
	if _, _, ok := m.field.Pointer(); ok {
		t.Error("motion over the status line should clear the pointer")
	}
}

func TestModelTick(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(m.links) != 1 {
		t.Errorf("expected one history sample, got %d", len(m.links))
	}

	m = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if m.running {
		t.Fatal("space should pause")
	}
	m = update(m, TickMsg(time.Now()))
	if len(m.links) != 1 {
		t.Error("paused model should not step")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("status line should show PAUSED")
	}
}

func TestModelHistoryIsBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < historyCapacity+10; i++ {
		m.record(float64(i))
	}
	if len(m.links) != historyCapacity {
		t.Errorf("history grew to %d", len(m.links))
	}
	if m.links[len(m.links)-1] != float64(historyCapacity+9) {
		t.Error("newest sample should be last")
	}
}

func TestModelQuit(t *testing.T) {
	_, cmd := newTestModel(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
