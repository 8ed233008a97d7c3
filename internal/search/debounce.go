// Package search turns the raw keystroke stream from the search box into
// a rate-limited stream of catalog queries.
package search

import "time"

// DefaultQuietInterval is how long the input has to stay quiet before a
// search is dispatched.
const DefaultQuietInterval = 500 * time.Millisecond

// Coordinator debounces query input. It holds no timer state itself: the
// pending handle is passed in and the replacement handed back, so the
// whole thing is a state-transition function the caller drives.
type Coordinator struct {
	interval time.Duration
	dispatch func(text string)
}

// NewCoordinator builds a coordinator that calls dispatch with the final
// text of each quiet window. A non-positive interval falls back to the
// default.
func NewCoordinator(interval time.Duration, dispatch func(text string)) *Coordinator {
	if interval <= 0 {
		interval = DefaultQuietInterval
	}
	return &Coordinator{interval: interval, dispatch: dispatch}
}

// OnInput processes one keystroke event. The pending timer, if any, is
// stopped and a fresh one scheduled for the full quiet interval, so only
// the last event of a burst ever dispatches. The returned handle must be
// fed into the next OnInput call.
func (c *Coordinator) OnInput(text string, pending *time.Timer) *time.Timer {
	if pending != nil {
		pending.Stop()
	}
	return time.AfterFunc(c.interval, func() {
		c.dispatch(text)
	})
}
