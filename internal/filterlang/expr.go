// Package filterlang implements the boolean filter expression language
// shared by octolog's hide, filter, and highlight queries: a small grammar
// of regex atoms composed with &&, ||, and !.
package filterlang

import "regexp"

// Expr is a boolean tree of regex atoms. The concrete variants are
// Pattern, And, Or, and Not; there are no shared subtrees and no cycles.
type Expr interface {
	// Matches reports whether text satisfies the expression.
	Matches(text string) bool

	// collectMatches appends every regex-leaf match against text to dst,
	// including matches found beneath Not nodes.
	collectMatches(text string, dst []Range) []Range
}

// Range is a byte offset span, end-exclusive.
type Range struct {
	Start, End int
}

// Pattern is a single compiled regex atom.
type Pattern struct {
	Source string
	Regexp *regexp.Regexp
}

func (p *Pattern) Matches(text string) bool {
	return p.Regexp.MatchString(text)
}

func (p *Pattern) collectMatches(text string, dst []Range) []Range {
	for _, loc := range p.Regexp.FindAllStringIndex(text, -1) {
		dst = append(dst, Range{Start: loc[0], End: loc[1]})
	}
	return dst
}

// And is the conjunction of two sub-expressions.
type And struct {
	Left, Right Expr
}

func (a *And) Matches(text string) bool {
	return a.Left.Matches(text) && a.Right.Matches(text)
}

func (a *And) collectMatches(text string, dst []Range) []Range {
	dst = a.Left.collectMatches(text, dst)
	return a.Right.collectMatches(text, dst)
}

// Or is the disjunction of two sub-expressions.
type Or struct {
	Left, Right Expr
}

func (o *Or) Matches(text string) bool {
	return o.Left.Matches(text) || o.Right.Matches(text)
}

func (o *Or) collectMatches(text string, dst []Range) []Range {
	dst = o.Left.collectMatches(text, dst)
	return o.Right.collectMatches(text, dst)
}

// Not inverts its inner expression's boolean contribution. Its matches
// still feed FindAllMatches, since Not-branches contribute to highlight
// enumeration even though they invert Matches.
type Not struct {
	Inner Expr
}

func (n *Not) Matches(text string) bool {
	return !n.Inner.Matches(text)
}

func (n *Not) collectMatches(text string, dst []Range) []Range {
	return n.Inner.collectMatches(text, dst)
}

// FindAllMatches returns a sorted, non-overlapping list of byte ranges
// collected from every Pattern leaf in the tree, including those beneath
// Not nodes, with overlapping or adjacent ranges merged.
func FindAllMatches(e Expr, text string) []Range {
	matches := e.collectMatches(text, nil)
	sortRanges(matches)
	return mergeOverlapping(matches)
}

func sortRanges(ranges []Range) {
	// Small-n insertion sort keeps this allocation-free for the common
	// case of a handful of atoms per line.
	for i := 1; i < len(ranges); i++ {
		for j := i; j > 0 && ranges[j].Start < ranges[j-1].Start; j-- {
			ranges[j], ranges[j-1] = ranges[j-1], ranges[j]
		}
	}
}

func mergeOverlapping(ranges []Range) []Range {
	if len(ranges) == 0 {
		return ranges
	}
	write := 0
	for read := 1; read < len(ranges); read++ {
		if ranges[read].Start <= ranges[write].End {
			if ranges[read].End > ranges[write].End {
				ranges[write].End = ranges[read].End
			}
		} else {
			write++
			ranges[write] = ranges[read]
		}
	}
	return ranges[:write+1]
}
