// Package cursor tracks a custom pointer made of a dot and a lagging outline.
package cursor

import "github.com/san-kum/starfield/internal/geom"

// OutlineStyle is the visual state of the outline ring.
type OutlineStyle struct {
	Scale      float64
	Background string
	Border     string
}

var (
	RestStyle = OutlineStyle{
		Scale:      1,
		Background: "transparent",
		Border:     "var(--primary)",
	}
	HoverStyle = OutlineStyle{
		Scale:      1.5,
		Background: "rgba(14, 165, 233, 0.1)",
		Border:     "transparent",
	}
)

// Transform is the CSS transform keeping the ring centered on its position.
func (s OutlineStyle) Transform() string {
	if s.Scale == HoverStyle.Scale {
		return "translate(-50%, -50%) scale(1.5)"
	}
	return "translate(-50%, -50%) scale(1)"
}

// Follower moves the dot with the pointer and the outline one frame later.
type Follower struct {
	Dot     geom.Point
	Outline geom.Point

	pending    geom.Point
	hasPending bool
	hovered    bool
	targets    []geom.Rect
}

// New returns a follower that highlights over any of targets.
func New(targets []geom.Rect) *Follower {
	return &Follower{targets: append([]geom.Rect(nil), targets...)}
}

func (f *Follower) SetTargets(targets []geom.Rect) {
	f.targets = append(f.targets[:0], targets...)
}

// Move places the dot at p and queues the outline for the next frame. It
// reports whether the hover state flipped.
func (f *Follower) Move(p geom.Point) (hoverChanged bool) {
	f.Dot = p
	f.pending = p
	f.hasPending = true

	over := false
	for _, r := range f.targets {
		if r.Contains(p) {
			over = true
			break
		}
	}
	if over == f.hovered {
		return false
	}
	f.hovered = over
	return true
}

// Leave drops any hover highlight. It reports whether that changed anything.
func (f *Follower) Leave() bool {
	if !f.hovered {
		return false
	}
	f.hovered = false
	return true
}

// Frame applies the queued outline position. It reports whether the outline moved.
func (f *Follower) Frame() bool {
	if !f.hasPending {
		return false
	}
	f.Outline = f.pending
	f.hasPending = false
	return true
}

func (f *Follower) Hovered() bool { return f.hovered }

func (f *Follower) Style() OutlineStyle {
	if f.hovered {
		return HoverStyle
	}
	return RestStyle
}
