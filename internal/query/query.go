// Package query persists the user's hide/filter/highlight expressions and
// related view preferences across runs, the way a shell remembers its
// history: best-effort, and silently falls back to defaults rather than
// failing the session over a missing or corrupt file.
package query

import (
	"encoding/json"
	"os"
)

// FileName is the query file's name, resolved against the current
// working directory at startup — ported from original_source's
// per-directory ".logviewer-state" convention.
const FileName = ".octolog-query.json"

// Query is the persisted set of filter-language inputs and view
// preferences. The zero value is the default state: no hide/filter/
// highlight expression, no multi-line aggregation, lines unwrapped.
type Query struct {
	HideInput      string `json:"hide_input"`
	FilterInput    string `json:"filter_input"`
	HighlightInput string `json:"highlight_input"`
	WrapLines      bool   `json:"wrap_lines"`
	LineStartRegex string `json:"line_start_regex"`
}

// Load reads the query file from the current working directory. A
// missing file or malformed JSON both yield the zero Query rather than
// an error — there is nothing a caller could usefully do differently in
// either case.
func Load() Query {
	data, err := os.ReadFile(FileName)
	if err != nil {
		return Query{}
	}

	var q Query
	if err := json.Unmarshal(data, &q); err != nil {
		return Query{}
	}
	return q
}

// Save writes q to the query file in the current working directory,
// pretty-printed. Errors are returned so the caller can surface them in a
// status line, but a failed save never blocks the viewer from continuing.
func Save(q Query) error {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(FileName, data, 0o644)
}
