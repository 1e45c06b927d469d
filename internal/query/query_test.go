package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	chdirTemp(t)
	got := Load()
	require.Equal(t, Query{}, got)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	chdirTemp(t)

	q := Query{
		HideInput:      "secret=\\w+",
		FilterInput:    "error || warn",
		HighlightInput: "user_id",
		WrapLines:      true,
		LineStartRegex: `^\d{4}-\d{2}-\d{2}`,
	}
	require.NoError(t, Save(q))

	got := Load()
	require.Equal(t, q, got)
}

func TestLoadMalformedFileReturnsDefault(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(FileName, []byte("{not valid json"), 0o644))

	got := Load()
	require.Equal(t, Query{}, got)
}

func TestSaveWritesToWorkingDirectory(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, Save(Query{FilterInput: "x"}))

	_, err := os.Stat(FileName)
	require.NoError(t, err)
}
