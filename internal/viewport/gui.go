package viewport

import "sort"

// DefaultLineHeight is the estimated height (in the GUI model's own
// units, conventionally pixels) assumed for a line before it has been
// measured by the renderer.
const DefaultLineHeight = 20.0

// GUI is the variable-height viewport model: parallel LineHeights and
// cumulative LineOffsets (length = len(LineHeights)+1), a scroll position,
// a container height, and a follow-tail flag.
type GUI struct {
	LineHeights []float64
	LineOffsets []float64

	ScrollY          float64
	ContainerHeight  float64
	FollowTail       bool
	Version          uint64

	overscan float64
}

// NewGUI creates an empty GUI viewport with the given container height and
// a small over-scan margin used by FindVisibleRange to hide one-frame
// latency when measured heights differ from estimates.
func NewGUI(containerHeight float64) *GUI {
	return &GUI{
		LineOffsets:     []float64{0},
		ContainerHeight: containerHeight,
		FollowTail:      true,
		overscan:        DefaultLineHeight * 2,
	}
}

// TotalHeight is the cumulative height of every line currently tracked.
func (g *GUI) TotalHeight() float64 {
	if len(g.LineOffsets) == 0 {
		return 0
	}
	return g.LineOffsets[len(g.LineOffsets)-1]
}

// MaxScroll is the largest valid ScrollY value: enough to show the last
// line flush with the bottom of the container, never negative.
func (g *GUI) MaxScroll() float64 {
	m := g.TotalHeight() - g.ContainerHeight
	if m < 0 {
		return 0
	}
	return m
}

// ClampScroll keeps ScrollY within [0, MaxScroll()].
func (g *GUI) ClampScroll() {
	max := g.MaxScroll()
	if g.ScrollY < 0 {
		g.ScrollY = 0
	} else if g.ScrollY > max {
		g.ScrollY = max
	}
}

// ScrollToBottom sets ScrollY to MaxScroll.
func (g *GUI) ScrollToBottom() { g.ScrollY = g.MaxScroll() }

// IsAtBottom reports whether the viewport is within one unit of the
// bottom.
func (g *GUI) IsAtBottom() bool { return g.ScrollY >= g.MaxScroll()-1 }

// AppendLine extends both arrays by one entry at DefaultLineHeight,
// maintaining the invariants without a full rebuild. Call this when a new
// line is appended and it matches the active filter.
func (g *GUI) AppendLine() {
	g.LineHeights = append(g.LineHeights, DefaultLineHeight)
	current := g.LineOffsets[len(g.LineOffsets)-1]
	g.LineOffsets = append(g.LineOffsets, current+DefaultLineHeight)
}

// Reset rebuilds both arrays from scratch for the given filtered count,
// each entry at DefaultLineHeight, and bumps Version. Call this when the
// filter changes.
func (g *GUI) Reset(filteredCount int) {
	g.LineHeights = make([]float64, filteredCount)
	for i := range g.LineHeights {
		g.LineHeights[i] = DefaultLineHeight
	}
	g.rebuildOffsets()
	g.ClampScroll()
	g.Version++
}

func (g *GUI) rebuildOffsets() {
	offsets := make([]float64, len(g.LineHeights)+1)
	var offset float64
	for i, h := range g.LineHeights {
		offsets[i] = offset
		offset += h
	}
	offsets[len(g.LineHeights)] = offset
	g.LineOffsets = offsets
}

// SetLineHeight updates the measured height of line i iff it differs from
// the current estimate by more than 0.5, rebuilding offsets and bumping
// Version so observers know to re-render.
func (g *GUI) SetLineHeight(i int, height float64) {
	if i < 0 || i >= len(g.LineHeights) {
		return
	}
	if abs(g.LineHeights[i]-height) > 0.5 {
		g.LineHeights[i] = height
		g.rebuildOffsets()
		g.Version++
	}
}

// FindVisibleRange returns the [start, end) line indices visible at
// scrollY with the given viewport height, found by binary-searching
// LineOffsets, then widened by a small over-scan margin.
func (g *GUI) FindVisibleRange(scrollY, viewportHeight float64) (start, end int) {
	n := len(g.LineHeights)
	if n == 0 {
		return 0, 0
	}

	lo := scrollY - g.overscan
	start = sort.Search(len(g.LineOffsets), func(i int) bool {
		return g.LineOffsets[i] > lo
	}) - 1
	if start < 0 {
		start = 0
	}

	hi := scrollY + viewportHeight + g.overscan
	end = sort.Search(len(g.LineOffsets), func(i int) bool {
		return g.LineOffsets[i] >= hi
	})
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
