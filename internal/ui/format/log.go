package format

import (
	"fmt"
	"io"
	"time"
)

// LogRecord is one exported log line: its position in the original
// buffer, the time it was appended, and its content (the exporters store
// the hide-applied display content here).
type LogRecord struct {
	LineNumber int       `json:"line_number" yaml:"line_number"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	Content    string    `json:"content" yaml:"content"`
}

// WriteLogRecordsText writes records as plain "<timestamp>  <content>"
// lines, one per row, ANSI-stripped.
func WriteLogRecordsText(w io.Writer, records []LogRecord) error {
	for _, r := range records {
		ts := r.Timestamp.Format("2006-01-02 15:04:05")
		if _, err := fmt.Fprintf(w, "%s  %s\n", ts, StripANSI(r.Content)); err != nil {
			return err
		}
	}
	return nil
}
