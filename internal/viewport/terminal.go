// Package viewport implements the two virtualized viewport models the
// spec names: a trivial fixed-row terminal variant and a variable-height
// GUI variant with binary-searched visible-range queries. Neither binds to
// a concrete rendering backend — that stays an external collaborator.
package viewport

// Terminal is the fixed-row viewport model. Visible rows are the ones
// ending at the effective bottom index, and there are min(innerHeight,
// filteredCount) of them.
type Terminal struct {
	innerHeight int
}

// NewTerminal creates a terminal viewport with the given number of visible
// rows.
func NewTerminal(innerHeight int) *Terminal {
	return &Terminal{innerHeight: innerHeight}
}

// SetHeight updates the number of visible rows (e.g. on a resize event).
func (t *Terminal) SetHeight(innerHeight int) { t.innerHeight = innerHeight }

// VisibleRange returns the [start, end) filtered-index range to render
// given the bottom row's filtered index and the total filtered count.
func (t *Terminal) VisibleRange(bottomIdx, filteredCount int) (start, end int) {
	if filteredCount == 0 {
		return 0, 0
	}
	rows := t.innerHeight
	if rows > filteredCount {
		rows = filteredCount
	}
	end = bottomIdx + 1
	if end > filteredCount {
		end = filteredCount
	}
	start = end - rows
	if start < 0 {
		start = 0
	}
	return start, end
}
