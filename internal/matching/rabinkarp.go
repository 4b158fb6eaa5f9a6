package matching

import "math/bits"

// rollingHash carries the precomputed state for the hash-filtered scan: the
// pattern hash, the current window hash and the high-order multiplier
// base^(m-1) mod modulus needed to drop the outgoing character when rolling.
//
// Every product is reduced through a full 128-bit multiply, so the
// arithmetic cannot overflow for any modulus that fits in a signed 64-bit
// integer. Overflow is prevented, never detected after the fact.
type rollingHash struct {
	base    uint64
	modulus uint64
	pattern uint64
	window  uint64
	high    uint64
}

// mulMod returns a*b mod m using the 128-bit product. The caller guarantees
// m >= 1.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// newRollingHash hashes the pattern and the first len(pattern) bytes of
// text. The caller guarantees len(text) >= len(pattern) >= 1.
func newRollingHash(text, pattern string, base, modulus int64) *rollingHash {
	h := &rollingHash{base: uint64(base), modulus: uint64(modulus), high: 1 % uint64(modulus)}

	m := len(pattern)
	for i := 0; i < m-1; i++ {
		h.high = mulMod(h.high, h.base, h.modulus)
	}
	for i := 0; i < m; i++ {
		h.pattern = (mulMod(h.pattern, h.base, h.modulus) + uint64(pattern[i])) % h.modulus
		h.window = (mulMod(h.window, h.base, h.modulus) + uint64(text[i])) % h.modulus
	}

	return h
}

// roll slides the window one position right: the outgoing character's
// contribution is subtracted, the remainder shifted up, the incoming
// character added. The subtraction stays non-negative by adding the modulus
// back before reducing.
func (h *rollingHash) roll(outgoing, incoming byte) {
	drop := mulMod(uint64(outgoing), h.high, h.modulus)
	kept := (h.window + h.modulus - drop) % h.modulus
	h.window = (mulMod(kept, h.base, h.modulus) + uint64(incoming)) % h.modulus
}

// rabinKarp scans the text with a rolling hash filter. Only hash-equal
// windows are verified character by character, with the same comparison
// accounting as the naive scan. A verification that fails despite hash
// equality is a collision; matches are only ever reported after a full
// verification, so a deliberately bad modulus degrades speed, not
// correctness.
func rabinKarp(text, pattern string, base, modulus int64) (positions []int, comparisons, collisions int) {
	n, m := len(text), len(pattern)
	positions = make([]int, 0)
	if m > n {
		return positions, 0, 0
	}

	h := newRollingHash(text, pattern, base, modulus)

	for i := 0; i <= n-m; i++ {
		if h.pattern == h.window {
			j := 0
			for j < m && text[i+j] == pattern[j] {
				comparisons++
				j++
			}
			if j < m {
				comparisons++
				collisions++
			} else {
				positions = append(positions, i)
			}
		}
		if i < n-m {
			h.roll(text[i], text[i+m])
		}
	}

	return positions, comparisons, collisions
}
