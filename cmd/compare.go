package cmd

import (
	"context"
	"errors"
	"log"

	"github.com/spigell/cv-scanner/internal/analysis"
	"github.com/spigell/cv-scanner/internal/extract"
	"github.com/spigell/cv-scanner/internal/logger"
	"github.com/spigell/cv-scanner/internal/matching"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var compareCmd = &cobra.Command{
	Use:   "compare [cv file]",
	Short: "Run all matching algorithms over one CV and cross-check their results",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		compare(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringP("keywords", "k", "", "comma separated keywords, overrides the config")
	compareCmd.Flags().String("keywords-file", "", "file with keywords, one per line")
	compareCmd.Flags().String("job", "", "stored job description title to take keywords from")
}

func compare(cmd *cobra.Command, path string) {
	ctx := context.Background()

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

	doc, err := (&extract.Plain{}).Extract(path)
	if err != nil {
		logger.Fatal("loading cv text", zap.Error(err))
	}

	logger.Debug("extracted text",
		zap.String("file", doc.Name),
		zap.String("preview", truncatePreview(doc.Text)),
	)

	session := analysis.New(config.matchingOptions(), logger)

	rep, err := session.CompareAll(ctx, doc.Text, list)
	if err != nil {
		var disagreement *analysis.DisagreementError
		if errors.As(err, &disagreement) {
			logger.Fatal("strategies disagree, this is a matcher defect",
				zap.String("keyword", disagreement.Keyword),
				zap.Any("positions", disagreement.Positions),
			)
		}
		logger.Fatal("comparison failed", zap.Error(err))
	}

	for _, alg := range matching.Strategies() {
		res := rep.PerAlgorithm[alg.String()]
		logger.Info("algorithm result",
			zap.String("algorithm", alg.String()),
			zap.Strings("matched", res.Matched),
			zap.Strings("missing", res.Missing),
			zap.Float64("relevance_score", res.RelevanceScore),
			zap.Int("comparisons", res.TotalComparisons),
			zap.Duration("elapsed", res.TotalElapsed),
		)
	}

	logger.Info("comparison finished",
		zap.String("file", doc.Name),
		zap.Bool("agreement", rep.Agreement),
	)
}

func truncatePreview(text string) string {
	return logger.TruncateForLog(text, 200)
}
