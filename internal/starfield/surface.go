package starfield

// Surface is the drawing target of a frame. Alpha values handed to a Surface
// are already clamped to [0, 1].
type Surface interface {
	Clear(width, height float64)
	FillCircle(x, y, radius, alpha float64)
	StrokeLine(x0, y0, x1, y1, width, alpha float64)
}

// Recorder is a Surface that only counts and remembers draw calls.
type Recorder struct {
	Clears  int
	Circles []Circle
	Lines   []Line
}

type Circle struct {
	X, Y, Radius, Alpha float64
}

type Line struct {
	X0, Y0, X1, Y1 float64
	Width, Alpha   float64
}

func (r *Recorder) Clear(width, height float64) {
	r.Clears++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

func (r *Recorder) FillCircle(x, y, radius, alpha float64) {
	r.Circles = append(r.Circles, Circle{x, y, radius, alpha})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width, alpha float64) {
	r.Lines = append(r.Lines, Line{x0, y0, x1, y1, width, alpha})
}

// DrawCalls is the number of shapes drawn since the last Clear.
func (r *Recorder) DrawCalls() int {
	return len(r.Circles) + len(r.Lines)
}

type discard struct{}

func (discard) Clear(float64, float64) {}
func (discard) FillCircle(float64, float64, float64, float64) {}
func (discard) StrokeLine(float64, float64, float64, float64, float64, float64) {}

// Discard is a Surface that drops everything. Useful for headless runs.
var Discard Surface = discard{}
