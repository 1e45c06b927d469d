package highlight

import "regexp"

type heuristicRule struct {
	regexp *regexp.Regexp
	style  StyleID
}

// heuristicRules mirrors the token-level severity/bracket/timestamp table:
// case-insensitive severity words, bracketed tags, and the two timestamp
// shapes the spec names.
var heuristicRules = []heuristicRule{
	{regexp.MustCompile(`(?i)\b(error|err|fatal|fail(ed)?|panic)\b`), StyleSeverityError},
	{regexp.MustCompile(`(?i)\b(warn(ing)?)\b`), StyleSeverityWarn},
	{regexp.MustCompile(`(?i)\binfo\b`), StyleSeverityInfo},
	{regexp.MustCompile(`(?i)\b(debug|trace)\b`), StyleSeverityDebug},
	{regexp.MustCompile(`\[[^\]]+\]`), StyleBracket},
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}`), StyleTimestamp},
	{regexp.MustCompile(`\d{2}:\d{2}:\d{2}`), StyleTimestamp},
}

func heuristicSpans(text string) []Span {
	var spans []Span
	for _, rule := range heuristicRules {
		for _, loc := range rule.regexp.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{Start: loc[0], End: loc[1], Style: rule.style, Priority: PriorityHeuristic})
		}
	}
	return spans
}
