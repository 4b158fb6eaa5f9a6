// Package matching implements three interchangeable exact substring-search
// strategies over a single pattern and text. The strategies always produce
// identical match sets; what differs is the instrumentation they report:
// character comparison counts, hash collisions and preprocessing cost.
//
// Every search is a pure synchronous computation parameterized entirely by
// its arguments, so repeated calls are deterministic and safe to run from
// any goroutine.
package matching

import (
	"fmt"
	"strings"
	"time"
)

// Defaults for the hash-filtered strategy. The modulus is a large prime so
// that spurious hash equalities stay rare for byte-sized alphabets.
const (
	DefaultBase    = 256
	DefaultModulus = 1_000_000_007
)

// Options control case folding and the rolling-hash parameters shared across
// a session. The zero value folds case and uses the default hash parameters.
type Options struct {
	// CaseSensitive disables the one-time lower-casing of both text and
	// pattern that otherwise happens before a strategy runs.
	CaseSensitive bool
	// Base and Modulus override the rolling-hash parameters. Zero values
	// select the defaults. Only the hash-filtered strategy reads them.
	Base    int64
	Modulus int64
}

func (o *Options) base() int64 {
	if o == nil || o.Base <= 0 {
		return DefaultBase
	}
	return o.Base
}

func (o *Options) modulus() int64 {
	if o == nil || o.Modulus <= 0 {
		return DefaultModulus
	}
	return o.Modulus
}

// Outcome is the immutable result of one (pattern, text, strategy)
// invocation.
type Outcome struct {
	Algorithm Algorithm
	Pattern   string
	// Positions holds every zero-based offset where the pattern begins,
	// overlapping occurrences included, in ascending order.
	Positions []int
	// Comparisons counts the character equality tests the strategy actually
	// performed, including the test that causes a mismatch.
	Comparisons int
	// Elapsed covers the whole strategy run, preprocessing included.
	Elapsed time.Duration
	// Collisions counts hash-equal windows that failed verification.
	// Populated by the hash-filtered strategy only.
	Collisions int
	// LPSBuild is the failure-function preprocessing time. Populated by the
	// failure-function strategy only.
	LPSBuild time.Duration
}

// Found reports whether the pattern occurred at least once.
func (o *Outcome) Found() bool { return len(o.Positions) > 0 }

// Search runs the selected strategy over text and pattern. The pattern must
// not be empty or whitespace-only; an empty text is valid and simply yields
// no matches. CompareAll is a meta-selection handled a level above and is
// rejected here.
func Search(alg Algorithm, text, pattern string, opts *Options) (*Outcome, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: search pattern is empty", ErrInvalidPattern)
	}

	start := time.Now()

	t, p := text, pattern
	if opts == nil || !opts.CaseSensitive {
		// Fold once, outside the comparison loops, so folding never
		// inflates the comparison counters.
		t = strings.ToLower(t)
		p = strings.ToLower(p)
	}

	out := &Outcome{Algorithm: alg, Pattern: pattern}

	switch alg {
	case BruteForce:
		out.Positions, out.Comparisons = bruteForce(t, p)
	case RabinKarp:
		out.Positions, out.Comparisons, out.Collisions = rabinKarp(t, p, opts.base(), opts.modulus())
	case KMP:
		out.Positions, out.Comparisons, out.LPSBuild = kmpSearch(t, p)
	default:
		return nil, fmt.Errorf("%w: %q is not a single search strategy", ErrUnknownAlgorithm, alg)
	}

	out.Elapsed = time.Since(start)
	return out, nil
}
