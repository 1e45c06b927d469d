package format

import (
	"regexp"

	"github.com/dustin/go-humanize"
)

// Size formats a byte count into human-readable format.
func Size(bytes uint64) string {
	return humanize.Bytes(bytes)
}

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes SGR color/style escape sequences from s, used when
// writing exported log lines to a file where they'd otherwise show up as
// garbage.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// FormatText returns s unchanged, or with ANSI codes stripped if noColor
// is set.
func FormatText(s string, noColor bool) string {
	if noColor {
		return StripANSI(s)
	}
	return s
}
