// Package audio synthesizes an ambient pad that follows starfield activity.
// The filter opens as link density rises, and an FFT of the output feeds a
// three-band level meter.
package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/starfield/internal/starfield"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	DefaultVolume = 0.25

	minCutoff = 300.0
	maxCutoff = 1200.0
)

// Gm7 add9: G2, Bb2, D3, F3, A3
var chord = []float64{98.00, 116.54, 146.83, 174.61, 220.00}

// Bands are smoothed, gain-normalized levels in [0, 1].
type Bands struct {
	Bass, Mid, High float64
}

// Synth is a stereo pad voice. Process runs on the audio thread; OnFrame and
// Bands are called from the frame loop.
type Synth struct {
	stars int

	mu     sync.Mutex
	volume float64
	target float64 // links per star
	bands  Bands

	// audio thread only
	time     float64
	density  float64
	filter   [2]float64
	delay    [2][]float64
	head     int
	window   []float64
	buf      []complex128
	maxLevel float64
}

// NewSynth returns a pad tuned for a field of the given star count.
func NewSynth(stars int) *Synth {
	delayLen := int(float64(SampleRate) * 0.6)

	window := make([]float64, BufferSize)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(BufferSize-1)))
	}

	return &Synth{
		volume:   DefaultVolume,
		stars:    stars,
		delay:    [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		window:   window,
		buf:      make([]complex128, BufferSize),
		maxLevel: 0.1,
	}
}

// OnFrame records link density. It satisfies anim.Observer.
func (s *Synth) OnFrame(stats starfield.FrameStats) {
	d := 0.0
	if s.stars > 0 {
		d = float64(stats.Links) / float64(s.stars)
	}
	s.mu.Lock()
	s.target = d
	s.mu.Unlock()
}

func (s *Synth) SetVolume(v float64) {
	s.mu.Lock()
	s.volume = math.Max(0, math.Min(v, 1))
	s.mu.Unlock()
}

func (s *Synth) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

func (s *Synth) Bands() Bands {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bands
}

// Cutoff maps smoothed link density to the low-pass cutoff in Hz.
func Cutoff(density float64) float64 {
	if density < 0 {
		density = 0
	}
	return minCutoff + math.Min(density*400, maxCutoff-minCutoff)
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// one-pole low pass
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Process fills out with the next block of samples. out holds one slice per
// channel; a single channel gets the left voice.
func (s *Synth) Process(out [][]float32) {
	if len(out) == 0 {
		return
	}

	s.mu.Lock()
	target, vol := s.target, s.volume
	s.mu.Unlock()

	s.density = s.density*0.995 + target*0.005
	cutoff := Cutoff(s.density)
	dt := 1.0 / float64(SampleRate)
	g := 1.0 / float64(len(chord))

	for i := range out[0] {
		var l, r float64
		for j, f := range chord {
			lfo := math.Sin(s.time*0.2 + float64(j))
			amp := g * (0.7 + 0.3*lfo)
			l += triangle(s.time*f*0.999) * amp
			r += triangle(s.time*f*1.001) * amp
		}

		s.filter[0] = lpf(l, cutoff, dt, s.filter[0])
		s.filter[1] = lpf(r, cutoff, dt, s.filter[1])

		// ping-pong feedback delay
		dl := s.delay[0][s.head]
		dr := s.delay[1][s.head]
		mixL := s.filter[0] + dl*0.3 + dr*0.1
		mixR := s.filter[1] + dr*0.3 + dl*0.1
		s.delay[0][s.head] = mixL * 0.7
		s.delay[1][s.head] = mixR * 0.7
		s.head = (s.head + 1) % len(s.delay[0])

		out[0][i] = float32(mixL * vol)
		if len(out) > 1 {
			out[1][i] = float32(mixR * vol)
		}
		s.time += dt
	}

	s.analyze(out[0])
}

func (s *Synth) analyze(samples []float32) {
	for i := range s.buf {
		v := 0.0
		if i < len(samples) {
			v = float64(samples[i]) * s.window[i]
		}
		s.buf[i] = complex(v, 0)
	}
	spectrum := fft.FFT(s.buf)

	binHz := float64(SampleRate) / float64(BufferSize)
	var bass, mid, high float64
	for i := 1; i < BufferSize/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		switch hz := float64(i) * binHz; {
		case hz < 130:
			bass += mag
		case hz < 400:
			mid += mag
		default:
			high += mag
		}
	}

	// automatic gain
	peak := math.Max(bass/100.0, math.Max(mid/500.0, high/1000.0))
	if peak > s.maxLevel {
		s.maxLevel = peak
	} else {
		s.maxLevel *= 0.999
	}
	gain := 1.0
	if s.maxLevel > 0.001 {
		gain = math.Min(1.0/s.maxLevel, 50.0)
	}

	s.mu.Lock()
	s.bands.Bass = s.bands.Bass*0.9 + math.Min(bass/100.0*gain, 1.0)*0.1
	s.bands.Mid = s.bands.Mid*0.9 + math.Min(mid/500.0*gain, 1.0)*0.1
	s.bands.High = s.bands.High*0.9 + math.Min(high/1000.0*gain, 1.0)*0.1
	s.mu.Unlock()
}
