package source

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, ch <-chan Event, n int) []Event {
	t.Helper()
	var got []Event
	for i := 0; i < n; i++ {
		select {
		case e := <-ch:
			got = append(got, e)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d/%d", i+1, n)
		}
	}
	return got
}

func TestStdinEmitsLinesAndFlushesOnEOF(t *testing.T) {
	r := strings.NewReader("A\nB\nC")
	ch := make(chan Event, 8)
	require.NoError(t, StartStdin(r, nil, ch))

	events := drain(t, ch, 3)
	require.Equal(t, "A", events[0].Text)
	require.Equal(t, "B", events[1].Text)
	require.Equal(t, "C", events[2].Text)
}
