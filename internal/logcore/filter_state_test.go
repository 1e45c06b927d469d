package logcore

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyHideNoRegex(t *testing.T) {
	fs := &FilterState{}
	assert.Equal(t, "hello world", fs.ApplyHide("hello world"))
}

func TestApplyHideNoGroupsRemovesFullMatch(t *testing.T) {
	fs := &FilterState{HideRegex: regexp.MustCompile(`secret=\w+`)}
	assert.Equal(t, "user=alice  x=1", fs.ApplyHide("user=alice secret=abc123 x=1"))
}

func TestApplyHideWithCaptureGroups(t *testing.T) {
	fs := &FilterState{HideRegex: regexp.MustCompile(`(secret=)(\w+)`)}
	got := fs.ApplyHide("user=alice secret=abc123 x=1")
	assert.Equal(t, "user=alice  x=1", got)
}

func TestApplyHideIdempotent(t *testing.T) {
	fs := &FilterState{HideRegex: regexp.MustCompile(`secret=\w+`)}
	once := fs.ApplyHide("user=alice secret=abc123 x=1")
	twice := fs.ApplyHide(once)
	assert.Equal(t, once, twice)
}

func TestApplyHideEmptyMatchAdvances(t *testing.T) {
	fs := &FilterState{HideRegex: regexp.MustCompile(`x*`)}
	// Must terminate even though "x*" can match the empty string anywhere.
	got := fs.ApplyHide("abc")
	assert.Equal(t, "abc", got)
}

func TestMatchesFilterNoFilterIsPassthrough(t *testing.T) {
	fs := &FilterState{}
	assert.True(t, fs.MatchesFilter("anything"))
}
