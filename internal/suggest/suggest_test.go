package suggest

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var names = []string{"mair_el1", "sctlr_el1", "sctlr_el2", "tcr_el1"}

func TestClosest(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []string
	}{
		{
			name:   "swapped characters match as subsequence",
			prefix: "sctrl",
			limit:  3,
			want:   []string{"sctlr_el1", "sctlr_el2"},
		},
		{
			name:   "typo within edit distance",
			prefix: "scrlr",
			limit:  3,
			want:   []string{"sctlr_el1", "sctlr_el2"},
		},
		{
			name:   "limit is honored",
			prefix: "scrlr",
			limit:  1,
			want:   []string{"sctlr_el1"},
		},
		{
			name:   "nothing similar",
			prefix: "zzzzzz",
			limit:  3,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Closest(tt.prefix, names, tt.limit))
		})
	}
}

func TestClosestNoInput(t *testing.T) {
	assert.Len(t, Closest("", names, 3), 0)
	assert.Len(t, Closest("sctlr", names, 0), 0)
	assert.Len(t, Closest("sctlr", nil, 3), 0)
}

func TestByEditDistance(t *testing.T) {
	got := byEditDistance("tcr_e", []string{"tcr_el1", "tcx_el1", "sctlr_el1"})
	assert.Equal(t, []string{"tcr_el1", "tcx_el1"}, got)
}
