package audio

import (
	"math"
	"testing"

	"github.com/san-kum/starfield/internal/starfield"
)

func block() [][]float32 {
	return [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
}

func TestCutoff(t *testing.T) {
	tests := []struct {
		density, want float64
	}{
		{-1, minCutoff},
		{0, minCutoff},
		{1, minCutoff + 400},
		{100, maxCutoff},
	}
	for _, tt := range tests {
		if got := Cutoff(tt.density); got != tt.want {
			t.Errorf("Cutoff(%v) = %v, want %v", tt.density, got, tt.want)
		}
	}
}

func TestTriangle(t *testing.T) {
	if triangle(0) != 1 || triangle(0.5) != -1 || triangle(1.25) != 0 {
		t.Error("triangle wave out of shape")
	}
}

func TestProcessBounded(t *testing.T) {
	s := NewSynth(100)
	s.OnFrame(starfield.FrameStats{Links: 300})

	out := block()
	nonzero := false
	for n := 0; n < 20; n++ {
		s.Process(out)
		for ch := range out {
			for _, v := range out[ch] {
				if math.IsNaN(float64(v)) || math.Abs(float64(v)) > 1 {
					t.Fatalf("sample out of range: %v", v)
				}
				if v != 0 {
					nonzero = true
				}
			}
		}
	}
	if !nonzero {
		t.Error("pad produced silence")
	}

	b := s.Bands()
	if b.Bass <= 0 {
		t.Errorf("bass band should register the chord root, got %+v", b)
	}
	for _, v := range []float64{b.Bass, b.Mid, b.High} {
		if v < 0 || v > 1 {
			t.Errorf("band level out of [0,1]: %+v", b)
		}
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := NewSynth(100)
	s.SetVolume(0)

	out := block()
	s.Process(out)
	for _, v := range out[0] {
		if v != 0 {
			t.Fatalf("expected silence, got %v", v)
		}
	}
}

func TestSetVolumeClamps(t *testing.T) {
	s := NewSynth(1)
	s.SetVolume(3)
	if s.Volume() != 1 {
		t.Errorf("volume = %v, want 1", s.Volume())
	}
	s.SetVolume(-1)
	if s.Volume() != 0 {
		t.Errorf("volume = %v, want 0", s.Volume())
	}
}

func TestMonoOutput(t *testing.T) {
	s := NewSynth(10)
	out := [][]float32{make([]float32, 256)}
	s.Process(out)
	s.Process(nil)
}

func TestDensityFollowsLinks(t *testing.T) {
	s := NewSynth(0)
	s.OnFrame(starfield.FrameStats{Links: 50})
	if s.target != 0 {
		t.Error("zero stars should give zero density")
	}

	s = NewSynth(50)
	s.OnFrame(starfield.FrameStats{Links: 100})
	if s.target != 2 {
		t.Errorf("density = %v, want 2", s.target)
	}

	out := block()
	for n := 0; n < 2000; n++ {
		s.Process(out)
	}
	if math.Abs(s.density-2) > 0.01 {
		t.Errorf("smoothed density should settle near 2, got %v", s.density)
	}
}
