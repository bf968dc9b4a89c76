// Package pagerange parses user-entered page specifications like "1-3, 5, 7-9"
// into a validated, sorted list of 1-based page numbers.
package pagerange

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Selection is an ordered, strictly increasing list of unique 1-based page numbers.
type Selection []int

// InvalidRangeError reports a malformed or out-of-bounds segment of a page
// specification. The whole specification is rejected; no partial selection is
// ever returned alongside it.
type InvalidRangeError struct {
	Segment string
	Reason  string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid page range %q: %s", e.Segment, e.Reason)
}

// Parse resolves spec against a document with maxPages pages. Segments are
// comma-separated; each is either a single page number or a "start-end" range.
// Duplicate pages across segments collapse to one occurrence and the result is
// sorted ascending. An empty or whitespace-only spec yields an empty Selection
// and no error; the caller decides what an empty selection means.
func Parse(spec string, maxPages int) (Selection, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	seen := make(map[int]struct{})
	for _, segment := range strings.Split(spec, ",") {
		segment = strings.TrimSpace(segment)
		if strings.Contains(segment, "-") {
			if err := expandRange(segment, maxPages, seen); err != nil {
				return nil, err
			}
			continue
		}
		page, err := strconv.Atoi(segment)
		if err != nil {
			return nil, &InvalidRangeError{Segment: segment, Reason: "not a page number"}
		}
		if page < 1 || page > maxPages {
			return nil, &InvalidRangeError{
				Segment: segment,
				Reason:  fmt.Sprintf("page must be between 1 and %d", maxPages),
			}
		}
		seen[page] = struct{}{}
	}

	pages := make(Selection, 0, len(seen))
	for page := range seen {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return pages, nil
}

func expandRange(segment string, maxPages int, seen map[int]struct{}) error {
	parts := strings.Split(segment, "-")
	if len(parts) != 2 {
		return &InvalidRangeError{Segment: segment, Reason: "expected start-end"}
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return &InvalidRangeError{Segment: segment, Reason: "not a page number"}
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return &InvalidRangeError{Segment: segment, Reason: "not a page number"}
	}
	switch {
	case start < 1:
		return &InvalidRangeError{Segment: segment, Reason: "start must be at least 1"}
	case end > maxPages:
		return &InvalidRangeError{
			Segment: segment,
			Reason:  fmt.Sprintf("end must be at most %d", maxPages),
		}
	case start > end:
		return &InvalidRangeError{Segment: segment, Reason: "start is after end"}
	}
	for page := start; page <= end; page++ {
		seen[page] = struct{}{}
	}
	return nil
}
