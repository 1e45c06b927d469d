package logcore

import (
	"regexp"
	"sort"

	"github.com/bsisduck/octolog/internal/filterlang"
)

// FilterState holds the three optional compiled artifacts the operator
// can set: a hide regex, a filter expression, and a highlight expression.
// Each may be absent (pass-through). A failed compile leaves the previous
// value in place; the caller is responsible for recording the error
// against the offending field (the interactive controller keeps it in
// its fieldErr status).
type FilterState struct {
	HideRegex     *regexp.Regexp
	FilterExpr    filterlang.Expr
	HighlightExpr filterlang.Expr
}

// hideRange is a byte range marked for removal by ApplyHide.
type hideRange struct {
	start, end int
}

// ApplyHide computes the display content a line contributes downstream:
// with no hide regex it is the raw content unchanged; otherwise every
// non-overlapping match is either fully removed (no capture groups) or has
// only its capture groups removed (one or more groups present). The
// search cursor always advances past the match, by at least one byte for
// an empty match, to guarantee termination.
func (fs *FilterState) ApplyHide(raw string) string {
	if fs.HideRegex == nil {
		return raw
	}

	var ranges []hideRange
	searchStart := 0
	for searchStart < len(raw) {
		loc := fs.HideRegex.FindStringSubmatchIndex(raw[searchStart:])
		if loc == nil {
			break
		}
		matchStart, matchEnd := searchStart+loc[0], searchStart+loc[1]
		groupCount := len(loc)/2 - 1
		hasGroup := false
		for g := 1; g <= groupCount; g++ {
			gs, ge := loc[2*g], loc[2*g+1]
			if gs < 0 || ge < 0 {
				continue
			}
			ranges = append(ranges, hideRange{start: searchStart + gs, end: searchStart + ge})
			hasGroup = true
		}
		if !hasGroup {
			ranges = append(ranges, hideRange{start: matchStart, end: matchEnd})
		}

		advance := matchEnd
		if matchEnd == matchStart {
			advance++
		}
		searchStart = advance
	}

	if len(ranges) == 0 {
		return raw
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })
	merged := ranges[:1]
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.start <= last.end {
			if r.end > last.end {
				last.end = r.end
			}
			continue
		}
		merged = append(merged, r)
	}

	var out []byte
	pos := 0
	for _, r := range merged {
		start, end := r.start, r.end
		if start > len(raw) {
			start = len(raw)
		}
		if end > len(raw) {
			end = len(raw)
		}
		if start > pos {
			out = append(out, raw[pos:start]...)
		}
		pos = end
	}
	if pos < len(raw) {
		out = append(out, raw[pos:]...)
	}
	return string(out)
}

// MatchesFilter reports whether displayContent passes the active filter
// expression, or true when no filter is set.
func (fs *FilterState) MatchesFilter(displayContent string) bool {
	if fs.FilterExpr == nil {
		return true
	}
	return fs.FilterExpr.Matches(displayContent)
}
