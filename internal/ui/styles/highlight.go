package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bsisduck/octolog/internal/highlight"
)

// Additional palette entries for spans the base theme has no slot for.
var (
	ColorBracket   = lipgloss.Color("33")
	ColorTimestamp = lipgloss.Color("135")
	ColorJSONKey   = lipgloss.Color("81")
	ColorJSONStr   = lipgloss.Color("114")
	ColorJSONNum   = lipgloss.Color("215")
	ColorJSONBool  = lipgloss.Color("176")
)

// HighlightStyles maps every highlight.StyleID the highlighter can
// produce to the lipgloss.Style used to render it. StyleCustomHighlight
// puts ColorHighlightBg behind bold text so custom-filter matches stand
// out from the heuristic and JSON colors.
var HighlightStyles = map[highlight.StyleID]lipgloss.Style{
	highlight.StyleNone: Normal,

	highlight.StyleCustomHighlight: lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorHighlightBg).
		Bold(true),

	highlight.StyleSeverityError: Error,
	highlight.StyleSeverityWarn:  Warn,
	highlight.StyleSeverityInfo:  Success,
	highlight.StyleSeverityDebug: Info,

	highlight.StyleBracket:   lipgloss.NewStyle().Foreground(ColorBracket),
	highlight.StyleTimestamp: lipgloss.NewStyle().Foreground(ColorTimestamp),

	highlight.StyleJSONKey:    lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true),
	highlight.StyleJSONString: lipgloss.NewStyle().Foreground(ColorJSONStr),
	highlight.StyleJSONNumber: lipgloss.NewStyle().Foreground(ColorJSONNum),
	highlight.StyleJSONBool:   lipgloss.NewStyle().Foreground(ColorJSONBool),
	highlight.StyleJSONNull:   Info,
}

// RenderSegment styles a highlight.Segment's text using HighlightStyles,
// falling back to the Normal style for an unrecognized StyleID.
func RenderSegment(style highlight.StyleID, text string) string {
	s, ok := HighlightStyles[style]
	if !ok {
		s = Normal
	}
	return s.Render(text)
}
