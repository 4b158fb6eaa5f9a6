// Package report renders analysis results for external consumption: CSV
// rows for spreadsheets and the multi-size performance sweep. Formatting
// lives here so the analysis core stays presentation-free.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/cv-scanner/internal/analysis"
)

var batchHeader = []string{
	"cv_filename",
	"job_description",
	"algorithm",
	"matched_keywords",
	"missing_keywords",
	"relevance_score",
	"comparisons",
	"elapsed_ms",
	"extract_error",
	"timestamp",
}

// WriteBatchCSV writes one row per analyzed CV.
func WriteBatchCSV(w io.Writer, jobTitle string, batch *analysis.Batch) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(batchHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, file := range batch.Files {
		record := []string{
			file.File,
			jobTitle,
			batch.Algorithm.String(),
			strings.Join(file.Matched, "; "),
			strings.Join(file.Missing, "; "),
			formatScore(file.RelevanceScore),
			strconv.Itoa(file.TotalComparisons),
			formatMillis(file.TotalElapsed),
			file.ExtractError,
			now,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row for %q: %w", file.File, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}
