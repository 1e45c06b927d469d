// Package highlight builds priority-tagged style spans over a line's
// display content from three pools — a custom filter expression, inline
// JSON structural coloring, and heuristic log-level/bracket/timestamp
// rules — and resolves their overlaps into a flat, gap-free run of styled
// segments.
package highlight

// Priority tiers, highest wins ties via >= in the composition pass.
const (
	PriorityCustom    = 100
	PriorityJSON      = 50
	PriorityHeuristic = 10
)

// StyleID names a highlight style; the renderer maps these to concrete
// colors (see internal/ui/styles).
type StyleID int

const (
	StyleNone StyleID = iota
	StyleCustomHighlight
	StyleSeverityError
	StyleSeverityWarn
	StyleSeverityInfo
	StyleSeverityDebug
	StyleBracket
	StyleTimestamp
	StyleJSONKey
	StyleJSONString
	StyleJSONNumber
	StyleJSONBool
	StyleJSONNull
)

// Span is a highlight contribution: a byte range of the display content
// tagged with a style and a priority. Spans from different pools may
// overlap; Compose resolves that.
type Span struct {
	Start, End int
	Style      StyleID
	Priority   int
}

// Segment is one run of output: a substring and the single style that won
// the priority-argmax for every byte in it.
type Segment struct {
	Text  string
	Style StyleID
}

// Compose takes every contributing span and produces a flat, left-to-right
// sequence of segments covering text exactly once, with no gap and no
// overlap. It allocates a per-byte (style, priority) array the length of
// text and, for each span, overwrites every byte in its range whose
// resident priority is not greater — so a later span at equal priority
// still wins, matching a stable left-to-right paint order.
func Compose(text string, spans []Span) []Segment {
	if len(text) == 0 {
		return nil
	}
	if len(spans) == 0 {
		return []Segment{{Text: text, Style: StyleNone}}
	}

	styleAt := make([]StyleID, len(text))
	priorityAt := make([]int, len(text))

	for _, span := range spans {
		start, end := span.Start, span.End
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}
		for i := start; i < end; i++ {
			if span.Priority >= priorityAt[i] {
				styleAt[i] = span.Style
				priorityAt[i] = span.Priority
			}
		}
	}

	var segments []Segment
	pos := 0
	for pos < len(text) {
		style := styleAt[pos]
		end := pos + 1
		for end < len(text) && styleAt[end] == style {
			end++
		}
		segments = append(segments, Segment{Text: text[pos:end], Style: style})
		pos = end
	}
	return segments
}
