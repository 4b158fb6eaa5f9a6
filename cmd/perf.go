package cmd

import (
	"context"
	"log"
	"os"

	"github.com/spigell/cv-scanner/internal/analysis"
	"github.com/spigell/cv-scanner/internal/extract"
	"github.com/spigell/cv-scanner/internal/logger"
	"github.com/spigell/cv-scanner/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var perfCmd = &cobra.Command{
	Use:   "perf [cv files...]",
	Short: "Sweep all matching strategies over a CV corpus and export counters to CSV",
	Long: "Perf splits the given CV files into a small and a large bucket by text length, " +
		"runs every matching strategy over both buckets with the same keyword set " +
		"and writes per-bucket comparison and timing totals to a CSV file.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		perf(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(perfCmd)

	perfCmd.Flags().StringP("keywords", "k", "", "comma separated keywords")
	perfCmd.Flags().String("keywords-file", "", "file with keywords, one per line")
	perfCmd.Flags().String("job", "", "stored job description title to take keywords from")
	perfCmd.Flags().StringP("out", "o", "perf-report.csv", "path of the CSV report")
}

func perf(cmd *cobra.Command, args []string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	list, _, err := resolveKeywords(cmd, config)
	if err != nil {
		logger.Fatal("resolving keywords", zap.Error(err))
	}

	extractor := &extract.Plain{}
	docs := make([]*extract.Document, 0, len(args))
	for _, path := range args {
		doc, err := extractor.Extract(path)
		if err != nil {
			logger.Fatal("extracting a CV file", zap.String("file", path), zap.Error(err))
		}
		docs = append(docs, doc)
	}

	session := analysis.New(config.matchingOptions(), logger)

	rows, err := report.RunPerf(context.Background(), session, docs, list)
	if err != nil {
		logger.Fatal("running the perf sweep", zap.Error(err))
	}

	out := cmd.Flag("out").Value.String()
	f, err := os.Create(out)
	if err != nil {
		logger.Fatal("creating the CSV report", zap.String("path", out), zap.Error(err))
	}
	defer f.Close()

	if err := report.WritePerfCSV(f, rows); err != nil {
		logger.Fatal("writing the CSV report", zap.String("path", out), zap.Error(err))
	}

	logger.Info("perf sweep finished",
		zap.Int("documents", len(docs)),
		zap.Int("rows", len(rows)),
		zap.String("report", out),
	)
}
