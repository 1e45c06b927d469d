package viewport

import "testing"

func TestVisibleRangeNoLines(t *testing.T) {
	term := NewTerminal(10)
	start, end := term.VisibleRange(0, 0)
	if start != 0 || end != 0 {
		t.Fatalf("expected empty range, got [%d,%d)", start, end)
	}
}

func TestVisibleRangeFewerLinesThanHeight(t *testing.T) {
	term := NewTerminal(10)
	start, end := term.VisibleRange(2, 3)
	if start != 0 || end != 3 {
		t.Fatalf("expected [0,3), got [%d,%d)", start, end)
	}
}

func TestVisibleRangeAtBottomClampsToHeight(t *testing.T) {
	term := NewTerminal(5)
	start, end := term.VisibleRange(99, 100)
	if end != 100 {
		t.Fatalf("expected end 100, got %d", end)
	}
	if end-start != 5 {
		t.Fatalf("expected window of 5 rows, got %d", end-start)
	}
}

func TestVisibleRangeScrolledAwayFromBottom(t *testing.T) {
	term := NewTerminal(5)
	start, end := term.VisibleRange(20, 100)
	if start != 16 || end != 21 {
		t.Fatalf("expected [16,21), got [%d,%d)", start, end)
	}
}

func TestSetHeightChangesWindowSize(t *testing.T) {
	term := NewTerminal(5)
	term.SetHeight(2)
	start, end := term.VisibleRange(9, 10)
	if end-start != 2 {
		t.Fatalf("expected window of 2 rows after resize, got %d", end-start)
	}
}
