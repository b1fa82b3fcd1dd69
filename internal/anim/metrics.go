package anim

import "github.com/san-kum/starfield/internal/starfield"

// mean averages one FrameStats field over the observed frames.
type mean struct {
	name  string
	pick  func(starfield.FrameStats) float64
	count int
	sum   float64
}

func (m *mean) Name() string { return m.name }

func (m *mean) Observe(s starfield.FrameStats) {
	m.count++
	m.sum += m.pick(s)
}

func (m *mean) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

func (m *mean) Reset() {
	m.count = 0
	m.sum = 0
}

func NewMeanLinks() Metric {
	return &mean{name: "links", pick: func(s starfield.FrameStats) float64 { return float64(s.Links) }}
}

func NewMeanRepelled() Metric {
	return &mean{name: "repelled", pick: func(s starfield.FrameStats) float64 { return float64(s.Repelled) }}
}

// NewMeanFrameTime reports the average frame cost in milliseconds.
func NewMeanFrameTime() Metric {
	return &mean{name: "frame_ms", pick: func(s starfield.FrameStats) float64 {
		return float64(s.Duration.Microseconds()) / 1000
	}}
}

// PeakLinks keeps the largest link count seen.
type PeakLinks struct {
	peak int
}

func (p *PeakLinks) Name() string { return "peak_links" }

func (p *PeakLinks) Observe(s starfield.FrameStats) {
	if s.Links > p.peak {
		p.peak = s.Links
	}
}

func (p *PeakLinks) Value() float64 { return float64(p.peak) }
func (p *PeakLinks) Reset()         { p.peak = 0 }

// DefaultMetrics is the metric set recorded for saved runs.
func DefaultMetrics() []Metric {
	return []Metric{NewMeanLinks(), NewMeanRepelled(), NewMeanFrameTime(), &PeakLinks{}}
}
