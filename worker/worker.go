package worker

import (
	"context"
	"time"
)

// Worker runs a background job until ctx is done
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker base for workers triggered on a fixed interval
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick run onWork repeatedly, backing off on error
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	errDelay := w.ErrDelay
	if errDelay <= 0 {
		errDelay = time.Second
	}

	dur := time.Millisecond
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
			if err := onWork(ctx); err != nil {
				dur = errDelay
			} else {
				dur = delay
			}
		}
	}
}
