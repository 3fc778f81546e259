package logic

import "strings"

// Segment is one run of a result title, marked when it matches the
// current input text.
type Segment struct {
	Text  string
	Match bool
}

// HighlightSegments splits text into alternating plain/match segments
// using case-insensitive literal occurrences of query. All occurrences
// are marked, not just the first. An empty query (or text) yields the
// text as a single unmarked segment. Concatenating the segments always
// reproduces text exactly.
//
// Matching is plain substring, deliberately not fuzzy.
func HighlightSegments(text, query string) []Segment {
	if text == "" || query == "" {
		return []Segment{{Text: text}}
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	var segments []Segment
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx < 0 {
			break
		}
		idx += start
		end := idx + len(lowerQuery)
		if end > len(text) {
			// Lowercasing shifted byte offsets (non-ASCII edge);
			// bail out rather than slice out of range.
			break
		}
		if idx > start {
			segments = append(segments, Segment{Text: text[start:idx]})
		}
		segments = append(segments, Segment{Text: text[idx:end], Match: true})
		start = end
	}

	if start < len(text) {
		segments = append(segments, Segment{Text: text[start:]})
	}
	if len(segments) == 0 {
		return []Segment{{Text: text}}
	}
	return segments
}
