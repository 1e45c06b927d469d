// Package throttle implements the adaptive render-coalescing timer: while
// lines keep arriving, the wait threshold before the next render decays
// multiplicatively down to a floor; once a quiet period exceeds the
// current threshold, pending lines are flushed and the threshold resets.
package throttle

import "time"

const (
	// BaseThreshold is the wait threshold used after a flush and before
	// the first line of a new burst arrives.
	BaseThreshold = 50 * time.Millisecond
	// MinThreshold is the floor the threshold decays towards during a
	// sustained burst.
	MinThreshold = 5 * time.Millisecond
	// DecayFactor multiplies the current threshold on every line received
	// while a burst is in progress.
	DecayFactor = 0.7
)

// Coalescer tracks pending lines awaiting a render and the adaptive
// threshold governing how long to wait for more before flushing. It holds
// no timer itself — callers drive it from their own event loop (e.g. a
// tea.Tick-based wait) and ask it for the next Threshold to wait on.
type Coalescer struct {
	pending   []string
	threshold time.Duration
	active    bool
}

// New creates a Coalescer with no pending lines, ready for the first
// burst.
func New() *Coalescer {
	return &Coalescer{threshold: BaseThreshold}
}

// Push records an arrived line as pending and decays the threshold,
// shortening the wait before the next flush. It returns the new
// threshold so the caller can re-arm its timer.
func (c *Coalescer) Push(line string) time.Duration {
	c.pending = append(c.pending, line)
	c.active = true
	c.threshold = decay(c.threshold)
	return c.threshold
}

// Threshold returns the current wait threshold.
func (c *Coalescer) Threshold() time.Duration { return c.threshold }

// Pending reports whether any lines are awaiting a flush.
func (c *Coalescer) Pending() bool { return len(c.pending) > 0 }

// Flush drains and returns the pending lines, resetting the threshold to
// BaseThreshold for the next burst.
func (c *Coalescer) Flush() []string {
	lines := c.pending
	c.pending = nil
	c.active = false
	c.threshold = BaseThreshold
	return lines
}

func decay(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * DecayFactor)
	if next < MinThreshold {
		return MinThreshold
	}
	return next
}
