package matching

// bruteForce tries every start index and compares the pattern left to right.
// Every character test counts toward comparisons, including the one that
// causes a mismatch. No preprocessing: a pattern longer than the text
// returns before entering the loop, with zero comparisons.
func bruteForce(text, pattern string) (positions []int, comparisons int) {
	n, m := len(text), len(pattern)
	positions = make([]int, 0)
	if m > n {
		return positions, 0
	}

	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			comparisons++
			j++
		}
		if j < m {
			// The failed equality test above still ran.
			comparisons++
			continue
		}
		positions = append(positions, i)
	}

	return positions, comparisons
}
