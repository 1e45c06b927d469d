package source

import (
	"regexp"
	"strings"
)

// Aggregator coalesces raw physical lines into logical records using an
// optional line-start regex, so stack traces and multi-line JSON records
// appear as one logical record to downstream filter and highlight.
//
// Disabled (no regex): every physical line is emitted as its own record.
// Enabled: a pending buffer accumulates lines until one matches the
// line-start regex, at which point the pending buffer flushes and a new
// one begins with the matching line. Flush() emits any remaining pending
// buffer at end-of-stream.
type Aggregator struct {
	lineStart *regexp.Regexp
	pending   strings.Builder
	hasPend   bool
}

// NewAggregator creates an Aggregator. A nil lineStart disables
// aggregation.
func NewAggregator(lineStart *regexp.Regexp) *Aggregator {
	return &Aggregator{lineStart: lineStart}
}

// Feed processes one physical line (already stripped of its trailing
// newline/carriage-return) and returns the logical record ready to emit,
// if any, and whether one was produced.
func (a *Aggregator) Feed(line string) (string, bool) {
	if a.lineStart == nil {
		return line, true
	}

	if a.lineStart.MatchString(line) {
		var out string
		ready := a.hasPend
		if ready {
			out = a.pending.String()
		}
		a.pending.Reset()
		a.pending.WriteString(line)
		a.hasPend = true
		return out, ready
	}

	if a.hasPend {
		a.pending.WriteByte('\n')
	} else {
		a.hasPend = true
	}
	a.pending.WriteString(line)
	return "", false
}

// Flush emits any pending buffer as a final logical record at
// end-of-stream.
func (a *Aggregator) Flush() (string, bool) {
	if a.lineStart == nil || !a.hasPend {
		return "", false
	}
	out := a.pending.String()
	a.pending.Reset()
	a.hasPend = false
	return out, true
}
