package anim

import (
	"context"
	"time"
)

const DefaultFPS = 60

// Scheduler paces the loop. Wait blocks until the next frame may run.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// Ticker releases one frame per tick, the way a display refresh would.
type Ticker struct {
	t *time.Ticker
}

// NewTicker paces frames at fps; a non-positive fps uses DefaultFPS.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

func (t *Ticker) Stop() { t.t.Stop() }

type immediate struct{}

func (immediate) Wait(ctx context.Context) error { return ctx.Err() }

// Immediate never waits. Headless runs use it to go as fast as possible.
func Immediate() Scheduler { return immediate{} }
