package pagerange

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		maxPages int
		want     Selection
	}{
		{"single page", "3", 10, Selection{3}},
		{"single page range", "1-1", 10, Selection{1}},
		{"simple range", "2-4", 10, Selection{2, 3, 4}},
		{"unordered singles are sorted", "3,1,2", 10, Selection{1, 2, 3}},
		{"overlapping ranges union", "1-3,2-4", 10, Selection{1, 2, 3, 4}},
		{"duplicate pages collapse", "5,5,5", 10, Selection{5}},
		{"mixed segments", "7-9, 5, 1-3", 10, Selection{1, 2, 3, 5, 7, 8, 9}},
		{"whitespace around segments", " 1 , 3 - 4 ", 10, Selection{1, 3, 4}},
		{"full document", "1-10", 10, Selection{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec, tt.maxPages)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmptySpec(t *testing.T) {
	for _, spec := range []string{"", "   ", "\t"} {
		got, err := Parse(spec, 10)
		require.NoError(t, err)
		assert.Empty(t, got, "spec %q should resolve to no pages, not an error", spec)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		maxPages int
	}{
		{"start below one", "0-2", 10},
		{"start after end", "5-3", 10},
		{"end beyond document", "8-12", 10},
		{"single page zero", "0", 10},
		{"single page beyond document", "11", 10},
		{"non-numeric segment", "abc", 10},
		{"non-numeric range bound", "1-x", 10},
		{"empty segment", "1,,3", 10},
		{"too many hyphens", "1-2-3", 10},
		{"negative single page", "-4,2", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec, tt.maxPages)
			var rangeErr *InvalidRangeError
			require.ErrorAs(t, err, &rangeErr)
		})
	}
}

func TestParseResultStrictlyIncreasing(t *testing.T) {
	specs := []string{"1-3,2-4", "9,1,5,1-9", "2,4,6,1-6", "10,1", "3-3,3"}
	for _, spec := range specs {
		got, err := Parse(spec, 10)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.True(t, sort.IntsAreSorted(got), "spec %q: %v not sorted", spec, got)
		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1], got[i], "spec %q: duplicate or out-of-order page", spec)
		}
	}
}
