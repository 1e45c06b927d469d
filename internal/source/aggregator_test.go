package source

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatorDisabledEmitsEachLine(t *testing.T) {
	a := NewAggregator(nil)
	out, ok := a.Feed("hello")
	require.True(t, ok)
	assert.Equal(t, "hello", out)
}

func TestAggregatorCoalescesUntilNextStart(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	a := NewAggregator(re)

	lines := []string{
		"2024-01-01 start",
		"  at foo",
		"  at bar",
		"2024-01-02 next",
	}
	var records []string
	for _, l := range lines {
		if out, ok := a.Feed(l); ok {
			records = append(records, out)
		}
	}
	if out, ok := a.Flush(); ok {
		records = append(records, out)
	}

	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-01 start\n  at foo\n  at bar", records[0])
	assert.Equal(t, "2024-01-02 next", records[1])
}

func TestAggregatorFlushWithNoPendingIsNoop(t *testing.T) {
	a := NewAggregator(regexp.MustCompile(`^START`))
	_, ok := a.Flush()
	assert.False(t, ok)
}
