package matching

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEquivalence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		text    string
		pattern string
		want    []int
	}{
		{"repeated block", "abcabcabc", "abc", []int{0, 3, 6}},
		{"overlapping", "aaaa", "aa", []int{0, 1, 2}},
		{"single char", "banana", "a", []int{1, 3, 5}},
		{"whole text", "golang", "golang", []int{0}},
		{"absent", "banana", "kiwi", []int{}},
		{"empty text", "", "java", []int{}},
		{"pattern longer than text", "go", "golang", []int{}},
		{"match at end", "resume with sql", "sql", []int{12}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, alg := range Strategies() {
				out, err := Search(alg, tc.text, tc.pattern, nil)
				require.NoError(t, err, alg.String())
				assert.Equal(t, tc.want, out.Positions, alg.String())
			}
		})
	}
}

func TestSearchEmptyPatternRejected(t *testing.T) {
	t.Parallel()

	for _, alg := range Strategies() {
		for _, pattern := range []string{"", "   ", "\t\n"} {
			_, err := Search(alg, "some text", pattern, nil)
			require.Error(t, err, alg.String())
			assert.ErrorIs(t, err, ErrInvalidPattern)
		}
	}
}

func TestSearchPatternLongerThanText(t *testing.T) {
	t.Parallel()

	for _, alg := range Strategies() {
		out, err := Search(alg, "go", "golang", nil)
		require.NoError(t, err)
		assert.Empty(t, out.Positions, alg.String())
		assert.Zero(t, out.Comparisons, alg.String())
	}
}

func TestSearchCaseFolding(t *testing.T) {
	t.Parallel()

	text := "Python Developer with Django"

	for _, alg := range Strategies() {
		folded, err := Search(alg, text, "DJANGO", nil)
		require.NoError(t, err)
		assert.Equal(t, []int{22}, folded.Positions, alg.String())

		sensitive, err := Search(alg, text, "DJANGO", &Options{CaseSensitive: true})
		require.NoError(t, err)
		assert.Empty(t, sensitive.Positions, alg.String())
	}
}

func TestSearchDeterminism(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("go gopher golang ", 50)

	for _, alg := range Strategies() {
		first, err := Search(alg, text, "gopher", nil)
		require.NoError(t, err)
		second, err := Search(alg, text, "gopher", nil)
		require.NoError(t, err)

		assert.Equal(t, first.Positions, second.Positions, alg.String())
		assert.Equal(t, first.Comparisons, second.Comparisons, alg.String())
		assert.Equal(t, first.Collisions, second.Collisions, alg.String())
	}
}

func TestSearchRejectsCompareAll(t *testing.T) {
	t.Parallel()

	_, err := Search(CompareAll, "text", "pattern", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}
