package matching

import "time"

// buildLPS computes the failure function: lps[i] is the length of the
// longest proper prefix of pattern[0..i] that is also a suffix of it. The
// matcher uses it to resume after a mismatch without re-reading text
// characters already consumed by a longer match attempt.
func buildLPS(pattern string) []int {
	m := len(pattern)
	lps := make([]int, m)

	length := 0
	for i := 1; i < m; i++ {
		for length > 0 && pattern[i] != pattern[length] {
			length = lps[length-1]
		}
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
		}
	}

	return lps
}

// kmpSearch walks text and pattern indices in lockstep. On equality both
// advance; on a mismatch the pattern index falls back through the failure
// function while the text index stays put. Each equality test, successful or
// not, counts one comparison. The failure-function build cost is timed
// separately from the scan comparisons.
func kmpSearch(text, pattern string) (positions []int, comparisons int, build time.Duration) {
	n, m := len(text), len(pattern)
	positions = make([]int, 0)
	if m > n {
		return positions, 0, 0
	}

	buildStart := time.Now()
	lps := buildLPS(pattern)
	build = time.Since(buildStart)

	i, j := 0, 0
	for i < n {
		if text[i] == pattern[j] {
			comparisons++
			i++
			j++
		}

		if j == m {
			positions = append(positions, i-j)
			j = lps[j-1]
		} else if i < n && text[i] != pattern[j] {
			comparisons++
			if j != 0 {
				j = lps[j-1]
			} else {
				i++
			}
		}
	}

	return positions, comparisons, build
}
