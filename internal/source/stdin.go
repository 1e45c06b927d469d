package source

import (
	"bufio"
	"io"
	"regexp"
)

// StartStdin begins a blocking line iteration over r until EOF, flushing
// the aggregator at end-of-stream. It returns synchronously once the
// worker goroutine is launched; all further signaling is via sink.
func StartStdin(r io.Reader, lineStart *regexp.Regexp, sink Sink) error {
	go runStdin(r, lineStart, sink)
	return nil
}

func runStdin(r io.Reader, lineStart *regexp.Regexp, sink Sink) {
	agg := NewAggregator(lineStart)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if out, ok := agg.Feed(scanner.Text()); ok {
			sink <- Event{Kind: EventLine, Text: out}
		}
	}
	if err := scanner.Err(); err != nil {
		sink <- Event{Kind: EventError, Text: err.Error()}
	}
	if out, ok := agg.Flush(); ok {
		sink <- Event{Kind: EventLine, Text: out}
	}
}
