package highlight

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// jsonSpans scans text for '{' or '[' and attempts to decode a JSON value
// from each candidate offset with a streaming decoder (the same
// encoding/json package the teacher's format.FormatJSON pretty-printer
// uses, here driven for parsing instead). On success it walks the decoded
// value and emits spans for keys, strings, numbers, booleans, and null,
// then continues scanning past the consumed span. A failed parse at a
// candidate offset advances by one byte, so plain text surrounding
// embedded JSON is left alone.
func jsonSpans(text string) []Span {
	var spans []Span
	searchStart := 0
	for searchStart < len(text) {
		rest := text[searchStart:]
		idx := strings.IndexAny(rest, "{[")
		if idx < 0 {
			break
		}
		candidateStart := searchStart + idx
		candidate := text[candidateStart:]

		dec := json.NewDecoder(bytes.NewReader([]byte(candidate)))
		var value any
		if err := dec.Decode(&value); err == nil {
			consumed := int(dec.InputOffset())
			if consumed > 0 {
				jsonText := candidate[:consumed]
				emitValueSpans(jsonText, value, candidateStart, &spans)
				searchStart = candidateStart + consumed
				continue
			}
		}
		searchStart = candidateStart + 1
	}
	return spans
}

func emitValueSpans(jsonText string, value any, base int, spans *[]Span) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			if pos := findJSONKey(jsonText, key); pos >= 0 {
				*spans = append(*spans, Span{
					Start: base + pos, End: base + pos + len(key) + 2,
					Style: StyleJSONKey, Priority: PriorityJSON,
				})
			}
			emitValueSpans(jsonText, val, base, spans)
		}
	case []any:
		for _, val := range v {
			emitValueSpans(jsonText, val, base, spans)
		}
	case string:
		if pos := findJSONString(jsonText, v); pos >= 0 {
			*spans = append(*spans, Span{
				Start: base + pos, End: base + pos + len(v) + 2,
				Style: StyleJSONString, Priority: PriorityJSON,
			})
		}
	case float64:
		numStr := strconv.FormatFloat(v, 'g', -1, 64)
		if pos := strings.Index(jsonText, numStr); pos >= 0 {
			*spans = append(*spans, Span{
				Start: base + pos, End: base + pos + len(numStr),
				Style: StyleJSONNumber, Priority: PriorityJSON,
			})
		}
	case bool:
		word := "false"
		if v {
			word = "true"
		}
		if pos := strings.Index(jsonText, word); pos >= 0 {
			*spans = append(*spans, Span{
				Start: base + pos, End: base + pos + len(word),
				Style: StyleJSONBool, Priority: PriorityJSON,
			})
		}
	case nil:
		if pos := strings.Index(jsonText, "null"); pos >= 0 {
			*spans = append(*spans, Span{
				Start: base + pos, End: base + pos + 4,
				Style: StyleJSONNull, Priority: PriorityJSON,
			})
		}
	}
}

func findJSONKey(text, key string) int {
	pattern := `"` + key + `"`
	pos := strings.Index(text, pattern)
	if pos < 0 {
		return -1
	}
	after := strings.TrimLeft(text[pos+len(pattern):], " \t\n\r")
	if strings.HasPrefix(after, ":") {
		return pos
	}
	return -1
}

func findJSONString(text, s string) int {
	pattern := `"` + s + `"`
	searchStart := 0
	for {
		idx := strings.Index(text[searchStart:], pattern)
		if idx < 0 {
			return -1
		}
		pos := searchStart + idx
		after := strings.TrimLeft(text[pos+len(pattern):], " \t\n\r")
		if !strings.HasPrefix(after, ":") {
			return pos
		}
		searchStart = pos + 1
	}
}
