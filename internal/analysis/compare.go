package analysis

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/spigell/cv-scanner/internal/matching"
)

// Report consolidates one session run per strategy over identical inputs.
type Report struct {
	// PerAlgorithm maps the canonical strategy name to its session result.
	PerAlgorithm map[string]*Result
	// Agreement is true iff every strategy produced the same matched
	// keyword set for every keyword.
	Agreement bool
}

// DisagreementError reports strategies that disagreed about a keyword.
// Exact matching is strategy-independent by definition, so a disagreement
// always signals an implementation defect in one of the matchers, never an
// expected runtime condition. It carries the positions each strategy
// reported so the defect can be diagnosed.
type DisagreementError struct {
	Keyword   string
	Positions map[string][]int
}

func (e *DisagreementError) Error() string {
	names := make([]string, 0, len(e.Positions))
	for name := range e.Positions {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf("algorithm disagreement: strategies %v produced different matched sets for keyword %q", names, e.Keyword)
}

// CompareAll runs all three strategies over the same text and keywords and
// cross-checks their matched keyword sets. The runs are independent pure
// computations, so they execute in parallel on a group bounded to the
// strategy count. On disagreement the report is still returned, with
// Agreement set to false, alongside the error describing the divergence.
func (s *Session) CompareAll(ctx context.Context, text string, keywords []string) (*Report, error) {
	strategies := matching.Strategies()
	results := make([]*Result, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(strategies))

	for idx, alg := range strategies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := s.Run(text, keywords, alg)
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		PerAlgorithm: make(map[string]*Result, len(results)),
		Agreement:    true,
	}
	for _, res := range results {
		report.PerAlgorithm[res.Algorithm.String()] = res
	}

	if err := crossCheck(results); err != nil {
		report.Agreement = false
		return report, err
	}

	return report, nil
}

// crossCheck asserts that every strategy found the same keywords. The
// minimum bar is set-level agreement; position lists ride along in the
// error for diagnosis.
func crossCheck(results []*Result) error {
	base := results[0]
	for kw, baseOut := range base.Outcomes {
		for _, other := range results[1:] {
			out, ok := other.Outcomes[kw]
			if !ok || baseOut.Found() != out.Found() {
				return &DisagreementError{
					Keyword:   kw,
					Positions: positionsByAlgorithm(results, kw),
				}
			}
		}
	}
	return nil
}

func positionsByAlgorithm(results []*Result, keyword string) map[string][]int {
	positions := make(map[string][]int, len(results))
	for _, res := range results {
		if out, ok := res.Outcomes[keyword]; ok {
			positions[res.Algorithm.String()] = out.Positions
		}
	}
	return positions
}
