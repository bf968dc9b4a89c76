package util

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// PDFExt is the only input extension the tool accepts.
const PDFExt = ".pdf"

// maxMergeStem caps the joined part of a merge filename before the prefix is
// applied, so a pile of long source names stays a usable filename.
const maxMergeStem = 50

// IsPDF reports whether name has a .pdf extension, case-insensitively.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), PDFExt)
}

// Stem returns the base name of path with its extension stripped.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// MergeName derives the output filename for a merge of the given source names,
// in order. Up to three sources are all named; beyond that the first two stand
// in for the rest.
func MergeName(names []string) string {
	stems := make([]string, len(names))
	for i, name := range names {
		stems[i] = Stem(name)
	}

	var joined string
	if len(stems) <= 3 {
		joined = strings.Join(stems, "_")
	} else {
		joined = fmt.Sprintf("%s_%s_and_%d_more", stems[0], stems[1], len(stems)-2)
	}
	if len(joined) > maxMergeStem {
		joined = joined[:maxMergeStem] + "..."
	}
	return "merged_" + joined + PDFExt
}

// SplitName derives the output filename for a split of source down to the
// given selected pages. Short selections are spelled out page by page; longer
// ones abbreviate to "first-last".
func SplitName(source string, pages []int) string {
	var desc string
	if len(pages) <= 5 {
		parts := make([]string, len(pages))
		for i, page := range pages {
			parts[i] = strconv.Itoa(page)
		}
		desc = strings.Join(parts, "-")
	} else {
		desc = fmt.Sprintf("%d-%d", pages[0], pages[len(pages)-1])
	}
	return fmt.Sprintf("%s_pages_%s%s", Stem(source), desc, PDFExt)
}
