package chapters

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Chapter is one entry of the generated chapter list. Start and End are total
// seconds from the beginning of the video; End is omitted for the final
// chapter.
type Chapter struct {
	Title string `json:"title"`
	Start int    `json:"start"`
	End   *int   `json:"end,omitempty"`
}

// ChapterList is the top-level shape produced by the generator.
type ChapterList struct {
	Chapters []Chapter `json:"chapters"`
}

// Decode parses a generated chapter document. Unlike Classify it validates the
// shape, not just JSON syntax.
func Decode(text string) (*ChapterList, error) {
	var list ChapterList
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		return nil, fmt.Errorf("decoding chapters: %w", err)
	}
	return &list, nil
}

// Classification is the result of attempting to parse body text as JSON.
// Exactly one of the two variants holds: Parsed with the raw document, or not
// JSON at all. Modeling this explicitly keeps the send path's branching free
// of exception-style control flow.
type Classification struct {
	Parsed bool
	Raw    json.RawMessage
}

// Classify determines whether text is a syntactically valid JSON document.
func Classify(text string) Classification {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return Classification{}
	}
	return Classification{Parsed: true, Raw: json.RawMessage(trimmed)}
}
