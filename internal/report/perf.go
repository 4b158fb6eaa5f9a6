package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spigell/cv-scanner/internal/analysis"
	"github.com/spigell/cv-scanner/internal/extract"
	"github.com/spigell/cv-scanner/internal/matching"
)

// PerfRow totals one strategy's counters over every document in a size
// bucket. Comparison counts, not wall time, are the deterministic
// cross-run signal; elapsed time rides along for context.
type PerfRow struct {
	Bucket      string
	Documents   int
	Algorithm   string
	Comparisons int
	ElapsedMs   float64
}

// RunPerf buckets the documents by text length around the median (the
// smaller half against the larger half) and runs every strategy over each
// bucket with the same keyword set. Cross-strategy agreement is asserted on
// the way: a perf sweep that measures diverging matchers would be
// meaningless.
func RunPerf(ctx context.Context, session *analysis.Session, docs []*extract.Document, keywords []string) ([]PerfRow, error) {
	small, large := splitByMedian(docs)
	buckets := []struct {
		name string
		docs []*extract.Document
	}{
		{"small", small},
		{"large", large},
	}

	var rows []PerfRow
	for _, bucket := range buckets {
		totals := make(map[string]*PerfRow, len(matching.Strategies()))

		for _, doc := range bucket.docs {
			report, err := session.CompareAll(ctx, doc.Text, keywords)
			if err != nil {
				return nil, fmt.Errorf("perf sweep on %q: %w", doc.Name, err)
			}

			for name, res := range report.PerAlgorithm {
				row, ok := totals[name]
				if !ok {
					row = &PerfRow{Bucket: bucket.name, Algorithm: name}
					totals[name] = row
				}
				row.Documents++
				row.Comparisons += res.TotalComparisons
				row.ElapsedMs += float64(res.TotalElapsed.Microseconds()) / 1000
			}
		}

		names := make([]string, 0, len(totals))
		for name := range totals {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rows = append(rows, *totals[name])
		}
	}

	return rows, nil
}

// splitByMedian partitions documents into a small and a large half by text
// length, mirroring how CV corpora are usually skewed: many short resumes,
// a few long ones.
func splitByMedian(docs []*extract.Document) (small, large []*extract.Document) {
	if len(docs) == 0 {
		return nil, nil
	}

	lengths := make([]int, len(docs))
	for i, doc := range docs {
		lengths[i] = len(doc.Text)
	}
	sort.Ints(lengths)
	median := lengths[(len(lengths)-1)/2]

	for _, doc := range docs {
		if len(doc.Text) <= median {
			small = append(small, doc)
		} else {
			large = append(large, doc)
		}
	}
	return small, large
}

var perfHeader = []string{"bucket", "documents", "algorithm", "comparisons", "elapsed_ms"}

// WritePerfCSV renders the sweep rows.
func WritePerfCSV(w io.Writer, rows []PerfRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(perfHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Bucket,
			strconv.Itoa(row.Documents),
			row.Algorithm,
			strconv.Itoa(row.Comparisons),
			strconv.FormatFloat(row.ElapsedMs, 'f', 3, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
