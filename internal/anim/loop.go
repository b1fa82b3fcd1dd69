// Package anim runs frame loops: a scheduler paces frames, metrics and
// observers watch them, and a context ends them.
package anim

import (
	"context"
	"errors"
	"time"

	"github.com/san-kum/starfield/internal/starfield"
)

// Framer is anything that renders one frame onto a surface. Both
// *starfield.Field and *scene.Scene satisfy it.
type Framer interface {
	Frame(s starfield.Surface) starfield.FrameStats
}

// Loop drives a Framer once per scheduler slot.
type Loop struct {
	framer    Framer
	surface   starfield.Surface
	scheduler Scheduler
	metrics   []Metric
	observers []Observer
}

func New(framer Framer, surface starfield.Surface, scheduler Scheduler) *Loop {
	if surface == nil {
		surface = starfield.Discard
	}
	if scheduler == nil {
		scheduler = Immediate()
	}
	return &Loop{
		framer:    framer,
		surface:   surface,
		scheduler: scheduler,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

// Step renders a single frame and feeds metrics and observers. Hosts that own
// their own frame callback (a window, a terminal program) call this directly.
func (l *Loop) Step() starfield.FrameStats {
	stats := l.framer.Frame(l.surface)
	for _, m := range l.metrics {
		m.Observe(stats)
	}
	for _, o := range l.observers {
		o.OnFrame(stats)
	}
	return stats
}

// Run renders frames until frames have been drawn, or forever when frames <= 0.
// An unbounded run ends only through ctx; that is its normal teardown and
// returns a nil error. A bounded run interrupted by ctx returns ctx.Err()
// alongside the partial result.
func (l *Loop) Run(ctx context.Context, frames int) (*Result, error) {
	bounded := frames > 0
	result := &Result{Metrics: make(map[string]float64)}
	if bounded {
		result.Frames = make([]starfield.FrameStats, 0, frames)
	}

	for _, m := range l.metrics {
		m.Reset()
	}

	start := time.Now()
	var runErr error
	for i := 0; !bounded || i < frames; i++ {
		if err := l.scheduler.Wait(ctx); err != nil {
			result.Terminated = true
			if bounded || !isCancel(err) {
				runErr = err
			}
			break
		}

		stats := l.Step()
		result.FramesRun++
		if bounded {
			result.Frames = append(result.Frames, stats)
		}
	}
	result.Elapsed = time.Since(start)

	for _, m := range l.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, runErr
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
