package starfield

import (
	"math"
	"math/rand"
	"time"
)

// FrameStats summarizes one Frame call.
type FrameStats struct {
	Frame    int
	Links    int
	Repelled int
	Duration time.Duration
}

// Field is the star collection plus the shared inputs every star reads.
type Field struct {
	cfg           Config
	stars         []Star
	width, height float64

	pointerX, pointerY float64
	hasPointer         bool

	frame int
}

// New sizes the field to width x height and populates cfg.Stars stars.
// A nil rng falls back to a time-seeded source.
func New(cfg Config, width, height float64, rng *rand.Rand) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f := &Field{cfg: cfg}
	f.Resize(width, height)

	f.stars = make([]Star, cfg.Stars)
	for i := range f.stars {
		f.stars[i] = newStar(rng, f.width, f.height, cfg)
	}
	return f, nil
}

// NewFromStars builds a field around an existing star set, e.g. one loaded
// from a saved run. The slice is copied.
func NewFromStars(cfg Config, width, height float64, stars []Star) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Field{cfg: cfg, stars: append([]Star(nil), stars...)}
	f.Resize(width, height)
	return f, nil
}

func (f *Field) Config() Config { return f.cfg }

func (f *Field) Len() int { return len(f.stars) }

// Stars returns a copy of the current star records.
func (f *Field) Stars() []Star {
	return append([]Star(nil), f.stars...)
}

func (f *Field) Bounds() (width, height float64) { return f.width, f.height }

// Resize changes the wrap bounds. Existing stars stay where they are until
// their next update folds them back inside.
func (f *Field) Resize(width, height float64) {
	f.width = math.Max(width, 0)
	f.height = math.Max(height, 0)
}

func (f *Field) PointerMove(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

func (f *Field) PointerLeave() {
	f.hasPointer = false
}

// Pointer reports the pointer position and whether one is present.
func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Update advances every star one frame and returns how many were pushed by
// the pointer.
func (f *Field) Update() int {
	repelled := 0
	for i := range f.stars {
		if f.updateStar(&f.stars[i]) {
			repelled++
		}
	}
	return repelled
}

func (f *Field) updateStar(s *Star) bool {
	s.X = wrap(s.X+s.VX, f.width)
	s.Y = wrap(s.Y+s.VY, f.height)

	if !f.hasPointer {
		return false
	}

	dx := f.pointerX - s.X
	dy := f.pointerY - s.Y
	if math.Hypot(dx, dy) >= f.cfg.Threshold {
		return false
	}

	s.X = wrap(s.X-dx*f.cfg.Repulsion, f.width)
	s.Y = wrap(s.Y-dy*f.cfg.Repulsion, f.height)
	return true
}

// Links returns the connection lines for the current positions.
func (f *Field) Links() []Link {
	return links(f.stars, f.cfg)
}

// Draw renders the current positions without advancing them and returns the
// number of links drawn. Hosts use it to repaint a paused field.
func (f *Field) Draw(s Surface) int {
	s.Clear(f.width, f.height)
	for _, st := range f.stars {
		s.FillCircle(st.X, st.Y, st.Radius, clamp01(st.Alpha))
	}
	ls := f.Links()
	for _, l := range ls {
		a, b := f.stars[l.I], f.stars[l.J]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.cfg.LinkWidth, l.Opacity)
	}
	return len(ls)
}

// Frame clears the surface, updates and draws every star, then draws the
// connection lines.
func (f *Field) Frame(s Surface) FrameStats {
	start := time.Now()
	s.Clear(f.width, f.height)

	repelled := 0
	for i := range f.stars {
		st := &f.stars[i]
		if f.updateStar(st) {
			repelled++
		}
		s.FillCircle(st.X, st.Y, st.Radius, clamp01(st.Alpha))
	}

	ls := f.Links()
	for _, l := range ls {
		a, b := f.stars[l.I], f.stars[l.J]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.cfg.LinkWidth, l.Opacity)
	}

	stats := FrameStats{
		Frame:    f.frame,
		Links:    len(ls),
		Repelled: repelled,
		Duration: time.Since(start),
	}
	f.frame++
	return stats
}
