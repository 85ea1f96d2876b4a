package core

import (
	"context"
	"time"
)

// Sim is a tick-driven state machine the loop advances.
type Sim interface {
	// Apply consumes one input action.
	Apply(a Action)
	// Update advances the simulation by one tick.
	Update()
	// Running reports whether the simulation still accepts updates.
	Running() bool
	// Render draws the current state onto dst. Presenting is left to the caller.
	Render(dst Surface)
}

// Scheduler paces the blocking loop between iterations.
type Scheduler interface {
	// Wait blocks for d or until ctx is done, whichever comes first.
	Wait(ctx context.Context, d time.Duration) error
}

// TimerScheduler waits on a real timer. The wait is cut short by context cancellation.
type TimerScheduler struct{}

// Wait implements Scheduler.
func (TimerScheduler) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Loop sequences one iteration as input -> update -> render -> present.
// It can be driven either by Run (blocking) or by calling Iterate from an
// external event loop that owns the tick timing.
type Loop struct {
	sim     Sim
	surface Surface
	input   *InputQueue
	period  time.Duration
	ticks   uint64
}

// NewLoop wires a simulation to a surface with the given tick period.
func NewLoop(sim Sim, surface Surface, period time.Duration) *Loop {
	return &Loop{
		sim:     sim,
		surface: surface,
		input:   NewInputQueue(),
		period:  period,
	}
}

// Input returns the queue drained at the start of every iteration.
func (l *Loop) Input() *InputQueue {
	return l.input
}

// Period returns the delay between iterations.
func (l *Loop) Period() time.Duration {
	return l.period
}

// Ticks returns the number of completed iterations.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Running reports whether the simulation is still live.
func (l *Loop) Running() bool {
	return l.sim.Running()
}

// Iterate runs exactly one iteration and reports whether the simulation is
// still running afterwards. The frame is rendered even when this iteration
// ended the game.
func (l *Loop) Iterate() bool {
	for _, a := range l.input.Drain() {
		l.sim.Apply(a)
	}
	l.sim.Update()
	l.ticks++

	l.sim.Render(l.surface)
	l.surface.Present()

	return l.sim.Running()
}

// Run iterates until the simulation terminates, waiting one period between
// iterations. No delay follows the final iteration. A scheduler error (for
// example a cancelled context) stops the loop and is returned.
func (l *Loop) Run(ctx context.Context, sched Scheduler) error {
	for l.sim.Running() {
		if !l.Iterate() {
			return nil
		}
		if err := sched.Wait(ctx, l.period); err != nil {
			return err
		}
	}
	return nil
}
