package anim

import (
	"time"

	"github.com/san-kum/starfield/internal/starfield"
)

type Metric interface {
	Name() string
	Observe(s starfield.FrameStats)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(s starfield.FrameStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(s starfield.FrameStats)

func (f ObserverFunc) OnFrame(s starfield.FrameStats) { f(s) }

type Result struct {
	Frames     []starfield.FrameStats
	FramesRun  int
	Metrics    map[string]float64
	Elapsed    time.Duration
	Terminated bool // stopped by context rather than by frame count
}
