package logs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bsisduck/octolog/internal/ui/format"
	"github.com/bsisduck/octolog/internal/viewport"
)

// ExportFormat selects the encoding WriteExport produces.
type ExportFormat string

const (
	ExportText ExportFormat = "text"
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// WriteExport encodes records in the requested format. It is shared by
// the interactive "e" keybinding and the non-interactive
// "octolog export" command so both paths produce byte-identical output
// for the same format and records. pageSize, when positive, splits a JSON
// export into a top-level array of per-page record arrays rather than one
// flat array, letting a consumer page through a large buffer without
// loading the whole export at once; it's ignored for text and YAML.
func WriteExport(w io.Writer, ef ExportFormat, records []format.LogRecord, pageSize int) error {
	switch ef {
	case ExportJSON:
		if pageSize > 0 {
			return format.FormatJSON(w, paginate(records, pageSize))
		}
		return format.FormatJSON(w, records)
	case ExportYAML:
		return format.FormatYAML(w, records)
	default:
		return format.WriteLogRecordsText(w, records)
	}
}

// paginate splits records into pageSize-line pages using the GUI
// viewport's binary-searched visible-range queries over a synthetic
// uniform-height layout — the same machinery the GUI viewport model uses
// to find what's on screen, repurposed here to find what's on a page.
func paginate(records []format.LogRecord, pageSize int) [][]format.LogRecord {
	if pageSize <= 0 || len(records) == 0 {
		return [][]format.LogRecord{records}
	}

	pageHeight := float64(pageSize) * viewport.DefaultLineHeight
	gui := viewport.NewGUI(pageHeight)
	gui.Reset(len(records))

	var pages [][]format.LogRecord
	nextStart := 0
	for scrollY := 0.0; nextStart < len(records); scrollY += pageHeight {
		start, end := gui.FindVisibleRange(scrollY, pageHeight)
		if start < nextStart {
			start = nextStart
		}
		if end > len(records) {
			end = len(records)
		}
		if end > start+pageSize {
			end = start + pageSize
		}
		if end <= start {
			// This window's overscan is entirely swallowed by a
			// wider earlier page; a later, larger window will clear
			// nextStart eventually since hi grows without bound.
			continue
		}
		pages = append(pages, records[start:end])
		nextStart = end
	}
	return pages
}

func extensionFor(ef ExportFormat) string {
	switch ef {
	case ExportJSON:
		return "json"
	case ExportYAML:
		return "yaml"
	default:
		return "log"
	}
}

// exportCmd writes the currently filtered view to
// ~/.octolog/exports/<timestamp>.<ext>, grounded in the teacher's
// exportLogs/--output-format duo but over the filtered index set rather
// than the whole raw buffer.
func (m Model) exportCmd() tea.Cmd {
	records := m.filteredRecords()
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return exportDoneMsg{err: fmt.Errorf("home dir: %w", err)}
		}

		dir := filepath.Join(home, ".octolog", "exports")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{err: fmt.Errorf("create dir: %w", err)}
		}

		name := time.Now().Format("20060102-150405") + "." + extensionFor(ExportText)
		path := filepath.Join(dir, name)

		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: fmt.Errorf("create file: %w", err)}
		}
		defer f.Close()

		if err := WriteExport(f, ExportText, records, 0); err != nil {
			return exportDoneMsg{err: fmt.Errorf("write: %w", err)}
		}

		return exportDoneMsg{path: path, count: len(records)}
	}
}

// filteredRecords returns the LogRecord view of every line currently
// passing the active filter, in display order.
func (m Model) filteredRecords() []format.LogRecord {
	records := make([]format.LogRecord, 0, len(m.state.FilteredIndices))
	for _, idx := range m.state.FilteredIndices {
		line, ok := m.state.Buffer.At(idx)
		if !ok {
			continue
		}
		records = append(records, format.LogRecord{
			LineNumber: idx + 1,
			Timestamp:  line.Timestamp,
			Content:    m.state.Filter.ApplyHide(line.Content),
		})
	}
	return records
}
