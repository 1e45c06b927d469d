// Package logcore holds the append-only log buffer, the per-line filter
// state, and the hide-regex display-content derivation that the rest of
// octolog's pipeline builds on.
package logcore

import "time"

// LogLine is a single logical record: a wall-clock timestamp captured at
// ingest time, and the raw content with trailing newline/carriage-return
// stripped. It is immutable after creation.
type LogLine struct {
	Timestamp time.Time
	Content   string
}
