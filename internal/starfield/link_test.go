package starfield

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		v, size  float64
		expected float64
	}{
		{"inside", 10, 100, 10},
		{"zero", 0, 100, 0},
		{"at size", 100, 100, 0},
		{"past size", 130, 100, 30},
		{"negative", -1, 100, 99},
		{"far negative", -250, 100, 50},
		{"empty bound", 42, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrap(tt.v, tt.size); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("wrap(%v, %v) = %v, want %v", tt.v, tt.size, got, tt.expected)
			}
		})
	}

	if got := wrap(-1e-18, 100); got < 0 || got >= 100 {
		t.Errorf("wrap of tiny negative escaped bounds: %v", got)
	}
}

func TestLineOpacity(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		d        float64
		expected float64
	}{
		{0, 0.1},
		{50, 0.05},
		{99, 0.001},
		{100, 0},
		{250, 0},
	}

	for _, tt := range tests {
		if got := cfg.LineOpacity(tt.d); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("LineOpacity(%v) = %v, want %v", tt.d, got, tt.expected)
		}
	}

	cfg.LinkFalloff = 10
	if got := cfg.LineOpacity(50); got != 0 {
		t.Errorf("negative opacity not clamped: %v", got)
	}
}

func TestLinksMatchBruteForce(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(11))

	stars := make([]Star, 700)
	for i := range stars {
		stars[i] = newStar(rng, 600, 400, cfg)
	}

	got := links(stars, cfg)

	var want []Link
	for i := range stars {
		for j := i + 1; j < len(stars); j++ {
			d := math.Hypot(stars[i].X-stars[j].X, stars[i].Y-stars[j].Y)
			if d < cfg.Threshold {
				want = append(want, Link{I: i, J: j, Distance: d, Opacity: cfg.LineOpacity(d)})
			}
		}
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d links, got %d", len(want), len(got))
	}
	for k := range want {
		if got[k] != want[k] {
			t.Fatalf("link %d: got %+v, want %+v", k, got[k], want[k])
		}
	}
}

func TestLinksTooFewStars(t *testing.T) {
	if ls := links(nil, DefaultConfig()); ls != nil {
		t.Errorf("expected nil links, got %v", ls)
	}
	if ls := links([]Star{{X: 1, Y: 1}}, DefaultConfig()); ls != nil {
		t.Errorf("expected nil links, got %v", ls)
	}
}

func BenchmarkFrame(b *testing.B) {
	for _, n := range []int{100, 500, 2000} {
		cfg := DefaultConfig()
		cfg.Stars = n
		f, _ := New(cfg, 1280, 720, rand.New(rand.NewSource(1)))
		b.Run("stars="+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				f.Frame(Discard)
			}
		})
	}
}
