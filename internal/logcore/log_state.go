package logcore

// State owns the raw Buffer, the currently active FilterState, the
// incrementally maintained FilteredIndices, and the terminal scroll
// anchor. It is the controller's single source of truth for "what lines
// exist" and "which of them currently pass the filter."
type State struct {
	Buffer          *Buffer
	Filter          FilterState
	FilteredIndices []int

	bottomLineIdx int
	followTail    bool
}

// NewState creates an empty State with follow-tail enabled, matching the
// teacher's "start at the bottom and stay there" default.
func NewState() *State {
	return &State{
		Buffer:     NewBuffer(),
		followTail: true,
	}
}

// displayContent applies the active hide regex to a raw line's content.
func (s *State) displayContent(raw string) string {
	return s.Filter.ApplyHide(raw)
}

func (s *State) matches(raw string) bool {
	return s.Filter.MatchesFilter(s.displayContent(raw))
}

// AddLine appends a new line and, if it matches the active filter, appends
// its index to FilteredIndices. The scroll anchor is not advanced here;
// rendering consults FollowTail to decide where the viewport ends.
func (s *State) AddLine(content string, advanceLastUpdate bool) int {
	idx := s.Buffer.AddLine(content, advanceLastUpdate)
	line, _ := s.Buffer.At(idx)
	if s.matches(line.Content) {
		s.FilteredIndices = append(s.FilteredIndices, idx)
	}
	return idx
}

// RebuildFilteredIndices recomputes FilteredIndices from scratch by
// scanning the whole buffer. Call this after the hide or filter query
// changes; the scroll anchor resets to the top and follow-tail clears,
// since the operator has just indicated interest in the new selection.
func (s *State) RebuildFilteredIndices() {
	lines := s.Buffer.Lines()
	indices := make([]int, 0, len(lines))
	for i, line := range lines {
		if s.matches(line.Content) {
			indices = append(indices, i)
		}
	}
	s.FilteredIndices = indices
	s.bottomLineIdx = 0
	s.followTail = false
}

// Clear empties the buffer and filtered indices, and resets the viewport.
func (s *State) Clear() {
	s.Buffer.Clear()
	s.FilteredIndices = nil
	s.bottomLineIdx = 0
}

// FollowTail reports whether the scroll anchor currently tracks the tail.
func (s *State) FollowTail() bool { return s.followTail }

// SetFollowTail sets the follow-tail flag directly, without moving the
// scroll anchor.
func (s *State) SetFollowTail(v bool) { s.followTail = v }

// ScrollUp moves the bottom anchor up by amount lines. If following tail,
// it first snaps to the current tail before subtracting, then clears
// follow-tail — the operator has explicitly asked to look backward.
func (s *State) ScrollUp(amount int) {
	if s.followTail {
		s.bottomLineIdx = maxInt(len(s.FilteredIndices)-1, 0)
	}
	s.bottomLineIdx = maxInt(s.bottomLineIdx-amount, 0)
	s.followTail = false
}

// ScrollDown moves the bottom anchor down by amount lines. It is a no-op
// while following tail; otherwise it advances, capped at the last
// filtered index, and re-enables follow-tail once that cap is reached.
func (s *State) ScrollDown(amount int) {
	if s.followTail {
		return
	}
	maxIdx := maxInt(len(s.FilteredIndices)-1, 0)
	s.bottomLineIdx = minInt(s.bottomLineIdx+amount, maxIdx)
	if s.bottomLineIdx >= maxIdx {
		s.followTail = true
	}
}

// ScrollToStart clears follow-tail and anchors the viewport at the top.
func (s *State) ScrollToStart() {
	s.bottomLineIdx = 0
	s.followTail = false
}

// ScrollToEnd enables follow-tail, anchoring the viewport at the bottom.
func (s *State) ScrollToEnd() {
	s.followTail = true
	s.bottomLineIdx = maxInt(len(s.FilteredIndices)-1, 0)
}

// BottomLineIdx returns the filtered-index position currently shown at
// the bottom row: the live tail while following, or the clamped anchor
// otherwise.
func (s *State) BottomLineIdx() int {
	if s.followTail {
		return maxInt(len(s.FilteredIndices)-1, 0)
	}
	return minInt(s.bottomLineIdx, maxInt(len(s.FilteredIndices)-1, 0))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
