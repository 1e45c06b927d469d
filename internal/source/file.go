package source

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollFallback is the file-tail watcher's internal timeout: a
// stopped-but-still-growing file is rechecked at least this often even if
// the filesystem notification never fires.
const pollFallback = 500 * time.Millisecond

// StartFileTail opens path, emits its existing content through an
// aggregator, then watches for further writes. It returns a StartupError
// if the file cannot be opened, and otherwise returns synchronously once
// the watcher goroutine is launched.
func StartFileTail(path string, lineStart *regexp.Regexp, sink Sink) error {
	f, err := os.Open(path)
	if err != nil {
		return &StartupError{Op: "open file", Err: err}
	}

	agg := NewAggregator(lineStart)
	offset, err := readLinesFrom(f, agg, sink, 0)
	f.Close()
	if err != nil {
		return &StartupError{Op: "read file", Err: err}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// A watcher we can't create just means we fall back to polling
		// only; that's not fatal to starting the tail.
		watcher = nil
	} else if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		watcher = nil
	}

	go runFileTail(path, agg, sink, offset, watcher)
	return nil
}

// readLinesFrom reads complete lines from r through agg starting at the
// given offset assumption, returning the new offset (position after the
// last byte consumed).
func readLinesFrom(r io.ReadSeeker, agg *Aggregator, sink Sink, fromOffset int64) (int64, error) {
	if fromOffset > 0 {
		if _, err := r.Seek(fromOffset, io.SeekStart); err != nil {
			return fromOffset, err
		}
	}
	reader := bufio.NewReader(r)
	var consumed int64 = fromOffset
	for {
		line, err := reader.ReadString('\n')
		complete := len(line) > 0 && line[len(line)-1] == '\n'
		if complete {
			trimmed := trimLineEnding(line)
			if out, ok := agg.Feed(trimmed); ok {
				sink <- Event{Kind: EventLine, Text: out}
			}
			consumed += int64(len(line))
		}
		if err != nil {
			// A partial trailing line (no newline yet) is left unconsumed
			// so the next tick picks it up once it is terminated.
			break
		}
	}
	return consumed, nil
}

func trimLineEnding(s string) string {
	n := len(s)
	for n > 0 && (s[n-1] == '\n' || s[n-1] == '\r') {
		n--
	}
	return s[:n]
}

func runFileTail(path string, agg *Aggregator, sink Sink, offset int64, watcher *fsnotify.Watcher) {
	if watcher != nil {
		defer watcher.Close()
	}

	var events <-chan fsnotify.Event
	var errs <-chan error
	if watcher != nil {
		events = watcher.Events
		errs = watcher.Errors
	}

	ticker := time.NewTicker(pollFallback)
	defer ticker.Stop()

	reopenAndRead := func() {
		f, err := os.Open(path)
		if err != nil {
			sink <- Event{Kind: EventError, Text: err.Error()}
			return
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil {
			sink <- Event{Kind: EventError, Text: err.Error()}
			return
		}
		if stat.Size() < offset {
			// Rotation: the spec leaves the exact policy open; we take
			// the "re-read from the new file's start" option.
			offset = 0
		}

		newOffset, err := readLinesFrom(f, agg, sink, offset)
		if err != nil {
			sink <- Event{Kind: EventError, Text: err.Error()}
			return
		}
		offset = newOffset
	}

	for {
		select {
		case _, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			reopenAndRead()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			sink <- Event{Kind: EventError, Text: err.Error()}
		case <-ticker.C:
			reopenAndRead()
		}
	}
}
