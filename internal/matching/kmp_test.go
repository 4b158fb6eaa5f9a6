package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLPS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		want    []int
	}{
		{"a", []int{0}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abab", []int{0, 0, 1, 2}},
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
		{"abcde", []int{0, 0, 0, 0, 0}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, buildLPS(tc.pattern), tc.pattern)
	}
}

func TestKMPNeverExceedsNaiveComparisons(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text    string
		pattern string
	}{
		{"abcabcabc", "abc"},
		{"aaaa", "aa"},
		{strings.Repeat("ab", 200) + "abc", "abc"},
		{strings.Repeat("a", 300), "aaab"},
		{"python developer with django and sql experience", "sql"},
	}

	for _, tc := range cases {
		_, naiveComparisons := bruteForce(tc.text, tc.pattern)
		_, kmpComparisons, _ := kmpSearch(tc.text, tc.pattern)

		require.LessOrEqual(t, kmpComparisons, naiveComparisons,
			"text %q pattern %q", tc.text, tc.pattern)
	}
}

func TestKMPOverlappingMatches(t *testing.T) {
	t.Parallel()

	positions, comparisons, _ := kmpSearch("aaaa", "aa")
	assert.Equal(t, []int{0, 1, 2}, positions)
	// Each text character is consumed once; matched prefixes are reused
	// through the failure function instead of being compared again.
	assert.Equal(t, 4, comparisons)
}

func TestKMPBuildTimeTrackedSeparately(t *testing.T) {
	t.Parallel()

	out, err := Search(KMP, strings.Repeat("banana ", 100), "nana", nil)
	require.NoError(t, err)

	assert.NotZero(t, out.Elapsed)
	assert.GreaterOrEqual(t, out.Elapsed, out.LPSBuild)
}
