package analysis

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/cv-scanner/internal/extract"
	"github.com/spigell/cv-scanner/internal/matching"
)

// Score cut-offs for the batch distribution buckets.
const (
	highScoreCutoff   = 0.7
	mediumScoreCutoff = 0.3
)

// FileResult is one CV's outcome within a batch. ExtractError is set when
// the document text could not be obtained; such files score zero with every
// keyword missing instead of aborting the batch.
type FileResult struct {
	File         string
	ExtractError string
	*Result
}

// Distribution counts batch results by score band.
type Distribution struct {
	High   int
	Medium int
	Low    int
}

// Batch aggregates the results of analyzing multiple CV files against one
// keyword set.
type Batch struct {
	Algorithm matching.Algorithm
	Files     []*FileResult
	// AverageScore averages over files that matched at least one keyword.
	AverageScore float64
	Elapsed      time.Duration
	Distribution Distribution
}

// RunFiles extracts and analyzes every path with the selected strategy.
// Keywords are validated once up front; extraction failures become
// zero-score rows.
func (s *Session) RunFiles(extractor extract.Extractor, paths, keywords []string, alg matching.Algorithm) (*Batch, error) {
	if extractor == nil {
		return nil, fmt.Errorf("%w: no text source configured", matching.ErrInvalidText)
	}

	canonical, err := s.normalize(keywords)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	batch := &Batch{Algorithm: alg}

	var scored int
	var sum float64

	for _, path := range paths {
		doc, err := extractor.Extract(path)
		if err != nil {
			s.logger.Warn("extraction failed",
				zap.String("file", path),
				zap.Error(err),
			)
			batch.Files = append(batch.Files, &FileResult{
				File:         path,
				ExtractError: err.Error(),
				Result:       emptyResult(alg, canonical),
			})
			batch.Distribution.Low++
			continue
		}

		res, err := s.Run(doc.Text, keywords, alg)
		if err != nil {
			return nil, fmt.Errorf("analyzing %q: %w", path, err)
		}

		batch.Files = append(batch.Files, &FileResult{File: doc.Name, Result: res})

		if res.RelevanceScore > 0 {
			scored++
			sum += res.RelevanceScore
		}

		switch {
		case res.RelevanceScore >= highScoreCutoff:
			batch.Distribution.High++
		case res.RelevanceScore >= mediumScoreCutoff:
			batch.Distribution.Medium++
		default:
			batch.Distribution.Low++
		}
	}

	if scored > 0 {
		batch.AverageScore = sum / float64(scored)
	}
	batch.Elapsed = time.Since(start)

	return batch, nil
}

// TopMatches returns the n highest scoring files, ties broken by file name
// for determinism.
func (b *Batch) TopMatches(n int) []*FileResult {
	ranked := make([]*FileResult, len(b.Files))
	copy(ranked, b.Files)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RelevanceScore != ranked[j].RelevanceScore {
			return ranked[i].RelevanceScore > ranked[j].RelevanceScore
		}
		return ranked[i].File < ranked[j].File
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// emptyResult builds the zero-score row recorded for a file whose text
// never reached the matchers.
func emptyResult(alg matching.Algorithm, canonical []string) *Result {
	unique := make(map[string]bool, len(canonical))
	for _, kw := range canonical {
		unique[kw] = true
	}

	res := &Result{
		Algorithm: alg,
		Outcomes:  map[string]*matching.Outcome{},
	}
	for kw := range unique {
		res.Missing = append(res.Missing, kw)
	}
	sort.Strings(res.Missing)

	return res
}
