package logcore

import (
	"sync"
	"time"
)

// Buffer is an append-only ordered sequence of LogLine. The index of a
// line is stable for its lifetime; the buffer never re-orders or removes
// lines except via an explicit Clear, which resets all indices. All
// methods are safe for concurrent use, matching the locking discipline
// the teacher's ring buffer used for a bounded log view — but without the
// circular overwrite, since the spec forbids silently dropping lines.
type Buffer struct {
	mu             sync.Mutex
	lines          []LogLine
	lastUpdateTime time.Time
	hasUpdate      bool
	totalBytes     uint64
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// AddLine appends content as a new LogLine stamped with the current wall
// clock and returns its (stable) index. When advanceLastUpdate is true the
// buffer's "last update" recency marker moves forward; SystemLine-style
// synthetic records pass false so connection banners don't affect
// recency status.
func (b *Buffer) AddLine(content string, advanceLastUpdate bool) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	idx := len(b.lines)
	b.lines = append(b.lines, LogLine{Timestamp: now, Content: content})
	b.totalBytes += uint64(len(content))
	if advanceLastUpdate {
		b.lastUpdateTime = now
		b.hasUpdate = true
	}
	return idx
}

// ByteSize returns the total size in bytes of every line's content
// currently stored, for the status bar's human-readable buffer size.
func (b *Buffer) ByteSize() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalBytes
}

// Len returns the number of lines currently stored.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// At returns the line at idx and whether idx was in range.
func (b *Buffer) At(idx int) (LogLine, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if idx < 0 || idx >= len(b.lines) {
		return LogLine{}, false
	}
	return b.lines[idx], true
}

// Lines returns a copy of all stored lines in order. The caller owns the
// returned slice.
func (b *Buffer) Lines() []LogLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]LogLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// LastUpdateTime returns the timestamp of the most recent non-synthetic
// line, and whether any such line has been added yet.
func (b *Buffer) LastUpdateTime() (time.Time, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUpdateTime, b.hasUpdate
}

// Clear empties the buffer, resetting all indices.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
	b.hasUpdate = false
	b.lastUpdateTime = time.Time{}
	b.totalBytes = 0
}
