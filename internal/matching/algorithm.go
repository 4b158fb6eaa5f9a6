package matching

import (
	"fmt"
	"strings"
)

// Algorithm is a closed set of matching strategies plus the compare-all
// meta-selection. Keeping the set closed makes the dispatch in Search
// exhaustive: an unknown identifier can only fail at parse time.
type Algorithm int

const (
	BruteForce Algorithm = iota
	RabinKarp
	KMP
	CompareAll
)

// String returns the canonical identifier, the same one ParseAlgorithm
// accepts.
func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "brute-force"
	case RabinKarp:
		return "rabin-karp"
	case KMP:
		return "kmp"
	case CompareAll:
		return "compare-all"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Strategies lists the concrete search strategies, excluding CompareAll.
func Strategies() []Algorithm {
	return []Algorithm{BruteForce, RabinKarp, KMP}
}

// ParseAlgorithm resolves a user-supplied identifier to an Algorithm. It
// accepts the canonical names plus common aliases, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "brute-force", "bruteforce", "brute", "naive":
		return BruteForce, nil
	case "rabin-karp", "rabinkarp", "rabin", "rk":
		return RabinKarp, nil
	case "kmp", "knuth-morris-pratt":
		return KMP, nil
	case "compare-all", "compare", "all":
		return CompareAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
