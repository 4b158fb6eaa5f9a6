package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRabinKarpMatchesNaiveVerificationCost(t *testing.T) {
	t.Parallel()

	// Every window of an all-equal text hashes like the pattern, so the
	// verification cost equals the naive scan exactly.
	positions, comparisons, collisions := rabinKarp("aaaa", "aa", DefaultBase, DefaultModulus)
	assert.Equal(t, []int{0, 1, 2}, positions)
	assert.Equal(t, 6, comparisons)
	assert.Zero(t, collisions)
}

func TestRabinKarpCollisionsStayCorrect(t *testing.T) {
	t.Parallel()

	// A modulus of 1 makes every window hash equal to the pattern hash.
	// All 9 windows collide, each verification fails on the fourth
	// character, and the position list stays empty.
	text := strings.Repeat("a", 12)
	positions, comparisons, collisions := rabinKarp(text, "aaab", DefaultBase, 1)

	assert.Empty(t, positions)
	assert.Equal(t, 9, collisions)
	assert.Equal(t, 36, comparisons)
}

func TestRabinKarpSmallModulusAgreesWithNaive(t *testing.T) {
	t.Parallel()

	text := "the gopher program deploys gopher services on gopher clusters"

	for _, modulus := range []int64{1, 2, 7, 101} {
		naivePositions, _ := bruteForce(text, "gopher")
		positions, _, _ := rabinKarp(text, "gopher", DefaultBase, modulus)
		assert.Equal(t, naivePositions, positions, "modulus %d", modulus)
	}
}

// Sweeps pattern lengths up to realistic keyword sizes and checks the
// modular arithmetic never drifts from the naive result. A broken reduction
// would show up as phantom or missing positions long before it overflows.
func TestRabinKarpPatternLengthSweep(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("kubernetes terraform golang postgres redis kafka ", 8)

	for m := 1; m <= 64; m++ {
		pattern := text[27 : 27+m]

		wantPositions, _ := bruteForce(text, pattern)
		positions, _, _ := rabinKarp(text, pattern, DefaultBase, DefaultModulus)

		require.Equal(t, wantPositions, positions, "pattern length %d", m)
	}
}

// Sweeps pattern lengths under a modulus near the int64 limit. The products
// here exceed 64 bits, so anything short of a full-width reduction would
// wrap the rolled window hash away from the pattern hash and silently drop
// true matches.
func TestRabinKarpLargeModulusAgreesWithNaive(t *testing.T) {
	t.Parallel()

	const largeModulus = int64(1)<<61 - 1

	text := strings.Repeat("distributed systems engineer, golang, grpc, kafka ", 8)

	for m := 1; m <= 64; m++ {
		pattern := text[13 : 13+m]

		wantPositions, wantComparisons := bruteForce(text, pattern)
		positions, comparisons, _ := rabinKarp(text, pattern, DefaultBase, largeModulus)

		require.Equal(t, wantPositions, positions, "pattern length %d", m)
		require.LessOrEqual(t, comparisons, wantComparisons, "pattern length %d", m)
	}
}

func TestRabinKarpLargeModulusFindsEmbeddedMatch(t *testing.T) {
	t.Parallel()

	// The match sits deep enough that the window hash has been rolled many
	// times before it has to line up with the pattern hash.
	text := strings.Repeat("x", 70) + "terraform" + strings.Repeat("y", 40)

	positions, _, _ := rabinKarp(text, "terraform", DefaultBase, int64(1)<<61-1)
	assert.Equal(t, []int{70}, positions)
}

func TestRollingHashRoll(t *testing.T) {
	t.Parallel()

	text := "abcdef"
	pattern := "cde"

	h := newRollingHash(text, pattern, DefaultBase, DefaultModulus)
	// Roll the window from "abc" to "cde" and expect it to line up with the
	// pattern hash.
	h.roll(text[0], text[3])
	h.roll(text[1], text[4])

	assert.Equal(t, h.pattern, h.window)
}
