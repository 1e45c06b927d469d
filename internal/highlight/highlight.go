package highlight

import "github.com/bsisduck/octolog/internal/filterlang"

// Line builds the full contributing-pool span set for one line's display
// content: custom highlight-expression matches at PriorityCustom, inline
// JSON structural coloring at PriorityJSON (always on — its per-line cost
// is bounded, per the spec), and heuristic severity/bracket/timestamp
// rules at PriorityHeuristic.
func Line(text string, customFilter filterlang.Expr) []Span {
	var spans []Span

	if customFilter != nil {
		for _, r := range filterlang.FindAllMatches(customFilter, text) {
			spans = append(spans, Span{Start: r.Start, End: r.End, Style: StyleCustomHighlight, Priority: PriorityCustom})
		}
	}

	spans = append(spans, jsonSpans(text)...)
	spans = append(spans, heuristicSpans(text)...)

	return spans
}

// Render is the convenience entry point the controller calls per visible
// line: build the span set, then compose it into flat output segments.
func Render(text string, customFilter filterlang.Expr) []Segment {
	return Compose(text, Line(text, customFilter))
}
