// Package analysis orchestrates keyword matching over a document text and
// reduces the per-keyword outcomes into a relevance verdict. It owns the
// boundary validation: invalid keywords are rejected before any matching
// work begins.
package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/cv-scanner/internal/matching"
)

// Session applies one matching strategy across an ordered keyword set. A
// session holds no mutable state between runs; the same session is safe to
// reuse across goroutines.
type Session struct {
	opts   *matching.Options
	logger *zap.Logger
}

func New(opts *matching.Options, logger *zap.Logger) *Session {
	if opts == nil {
		opts = &matching.Options{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{opts: opts, logger: logger}
}

// Result aggregates the per-keyword outcomes of one (text, keywords,
// algorithm) run. It is built once and never mutated afterwards.
type Result struct {
	Algorithm matching.Algorithm
	// Outcomes maps the canonical (trimmed, case-folded when folding is on)
	// keyword to its match outcome.
	Outcomes map[string]*matching.Outcome
	// Matched and Missing partition the unique canonical keywords, sorted.
	Matched []string
	Missing []string
	// RelevanceScore is the fraction of unique keywords found at least
	// once, always within [0, 1].
	RelevanceScore float64
	// TotalComparisons and TotalElapsed sum over every supplied keyword
	// instance, duplicates included.
	TotalComparisons int
	TotalElapsed     time.Duration
}

// Run matches every keyword in the caller-supplied order against the text.
// Duplicate keywords each run once, but the relevance score deduplicates
// before dividing, so duplicates neither inflate nor deflate it. An empty
// keyword list yields a zero score, not an error.
func (s *Session) Run(text string, keywords []string, alg matching.Algorithm) (*Result, error) {
	if alg == matching.CompareAll {
		return nil, fmt.Errorf("%w: compare-all is a meta-selection, use CompareAll", matching.ErrUnknownAlgorithm)
	}

	canonical, err := s.normalize(keywords)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Algorithm: alg,
		Outcomes:  make(map[string]*matching.Outcome, len(canonical)),
	}

	unique := make(map[string]bool, len(canonical))
	matched := make(map[string]bool)

	for _, kw := range canonical {
		out, err := matching.Search(alg, text, kw, s.opts)
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", kw, err)
		}

		res.Outcomes[kw] = out
		res.TotalComparisons += out.Comparisons
		res.TotalElapsed += out.Elapsed

		unique[kw] = true
		if out.Found() {
			matched[kw] = true
		}

		s.logger.Debug("keyword searched",
			zap.String("keyword", kw),
			zap.String("algorithm", alg.String()),
			zap.Int("occurrences", len(out.Positions)),
			zap.Int("comparisons", out.Comparisons),
		)
	}

	for kw := range unique {
		if matched[kw] {
			res.Matched = append(res.Matched, kw)
		} else {
			res.Missing = append(res.Missing, kw)
		}
	}
	sort.Strings(res.Matched)
	sort.Strings(res.Missing)

	res.RelevanceScore = relevanceScore(len(res.Matched), len(unique))

	return res, nil
}

// normalize trims every keyword and rejects empty ones up front, so no
// partial matching work happens on invalid input. When case folding is on
// the canonical form is lower-cased, which also governs deduplication.
func (s *Session) normalize(keywords []string) ([]string, error) {
	canonical := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			return nil, fmt.Errorf("%w: keyword list contains an empty entry", matching.ErrInvalidPattern)
		}
		if !s.opts.CaseSensitive {
			kw = strings.ToLower(kw)
		}
		canonical = append(canonical, kw)
	}
	return canonical, nil
}
