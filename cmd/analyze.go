package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/cv-scanner/internal/analysis"
	"github.com/spigell/cv-scanner/internal/extract"
	"github.com/spigell/cv-scanner/internal/keywords"
	"github.com/spigell/cv-scanner/internal/logger"
	"github.com/spigell/cv-scanner/internal/matching"
	"github.com/spigell/cv-scanner/internal/report"
	"github.com/spigell/cv-scanner/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const topMatchesShown = 10

var algorithmPrompt = promptui.Select{
	Label: "Choose a matching algorithm",
	Items: []string{
		matching.BruteForce.String(),
		matching.RabinKarp.String(),
		matching.KMP.String(),
		matching.CompareAll.String(),
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [cv files...]",
	Short: "Analyze CV files against job description keywords",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("algorithm", "a", "", "matching algorithm: brute-force, rabin-karp, kmp or compare-all")
	analyzeCmd.Flags().StringP("keywords", "k", "", "comma separated keywords, overrides the config")
	analyzeCmd.Flags().String("keywords-file", "", "file with keywords, one per line")
	analyzeCmd.Flags().String("job", "", "stored job description title to take keywords from")
	analyzeCmd.Flags().Bool("save", false, "persist results to the store")
	analyzeCmd.Flags().String("csv", "", "write results to a csv file")
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-scanner", zap.String("version", resolveVersion()))

	list, jobTitle, err := resolveKeywords(cmd, config)
	if err != nil {
		logger.Fatal("resolving keywords",
			zap.Error(err),
			zap.String("hint", "pass --keywords, --job or set keywords in the configuration file"),
		)
	}

	alg, err := resolveAlgorithm(cmd, config)
	if err != nil {
		logger.Fatal("resolving algorithm", zap.Error(err))
	}

	logger = sessionLogger(logger, alg, jobTitle)

	logger.Info("starting the analysis",
		zap.Int("keywords", len(list)),
		zap.Int("files", len(args)),
	)

	if alg == matching.CompareAll {
		compareFiles(ctx, args, list, config, logger)
		return
	}

	session := analysis.New(config.matchingOptions(), logger)

	batch, err := session.RunFiles(&extract.Plain{}, args, list, alg)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	for _, file := range batch.TopMatches(topMatchesShown) {
		fields := []zap.Field{
			zap.String("file", file.File),
			zap.Float64("relevance_score", file.RelevanceScore),
			zap.Strings("matched", file.Matched),
			zap.Strings("missing", file.Missing),
			zap.Int("comparisons", file.TotalComparisons),
		}
		if file.ExtractError != "" {
			fields = append(fields, zap.String("extract_error", file.ExtractError))
		}
		logger.Info("cv analyzed", fields...)
	}

	logger.Info("analysis finished",
		zap.Int("files", len(batch.Files)),
		zap.Float64("average_score", batch.AverageScore),
		zap.Int("high_matches", batch.Distribution.High),
		zap.Int("medium_matches", batch.Distribution.Medium),
		zap.Int("low_matches", batch.Distribution.Low),
		zap.Duration("elapsed", batch.Elapsed),
	)

	if path := cmd.Flag("csv").Value.String(); path != "" {
		if err := exportCSV(path, jobTitle, batch); err != nil {
			logger.Fatal("exporting csv", zap.Error(err))
		}
		logger.Info("results exported", zap.String("path", path))
	}

	if cmd.Flag("save").Value.String() == "true" {
		if err := saveBatch(config.Store, jobTitle, batch); err != nil {
			logger.Fatal("saving results", zap.Error(err))
		}
		logger.Info("results saved", zap.String("store", config.Store))
	}
}

// compareFiles runs the comparison runner per file. A disagreement between
// strategies is a correctness bug in the matchers and aborts loudly.
func compareFiles(ctx context.Context, paths, list []string, config *Config, logger *zap.Logger) {
	session := analysis.New(config.matchingOptions(), logger)
	extractor := &extract.Plain{}

	for _, path := range paths {
		doc, err := extractor.Extract(path)
		if err != nil {
			logger.Warn("skipping file", zap.String("file", path), zap.Error(err))
			continue
		}

		rep, err := session.CompareAll(ctx, doc.Text, list)
		if err != nil {
			logger.Fatal("algorithm comparison failed",
				zap.String("file", doc.Name),
				zap.Error(err),
			)
		}

		logComparison(logger, doc.Name, rep)
	}
}

func logComparison(logger *zap.Logger, name string, rep *analysis.Report) {
	for _, alg := range matching.Strategies() {
		res := rep.PerAlgorithm[alg.String()]

		logger.Info("algorithm result",
			zap.String("file", name),
			zap.String("algorithm", alg.String()),
			zap.Float64("relevance_score", res.RelevanceScore),
			zap.Int("comparisons", res.TotalComparisons),
			zap.Duration("elapsed", res.TotalElapsed),
		)
	}

	logger.Info("comparison finished",
		zap.String("file", name),
		zap.Bool("agreement", rep.Agreement),
	)
}

// resolveKeywords picks the keyword source: explicit flags win, then a
// stored job description, then the configuration file.
func resolveKeywords(cmd *cobra.Command, config *Config) ([]string, string, error) {
	if inline := cmd.Flag("keywords").Value.String(); strings.TrimSpace(inline) != "" {
		return keywords.Split(inline), "", nil
	}
	if file := cmd.Flag("keywords-file").Value.String(); file != "" {
		list, err := keywords.Load(keywords.Source{Name: "job keywords", File: file})
		return list, "", err
	}

	title := strings.TrimSpace(cmd.Flag("job").Value.String())
	if title == "" {
		title = strings.TrimSpace(config.Job)
	}
	if title != "" {
		job, err := findJob(config.Store, title)
		if err != nil {
			return nil, "", err
		}
		return job.Keywords, job.Title, nil
	}

	list, err := keywords.Load(keywords.Source{
		Name:   "job keywords",
		Inline: config.Keywords,
		File:   config.KeywordsFile,
	})
	return list, "", err
}

// sessionLogger attaches the standard session fields to the logger.
func sessionLogger(l *zap.Logger, alg matching.Algorithm, job string) *zap.Logger {
	return logger.WithFields(l, logger.SessionFields(alg.String(), job)...)
}

func findJob(storePath, title string) (*store.Job, error) {
	s, err := store.Open(storePath)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	job, err := s.FindJob(title)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("job description %q not found in store %q", title, storePath)
	}
	return job, nil
}

// resolveAlgorithm picks the strategy from the flag or config, falling back
// to an interactive prompt when neither names one.
func resolveAlgorithm(cmd *cobra.Command, config *Config) (matching.Algorithm, error) {
	name := cmd.Flag("algorithm").Value.String()
	if name == "" {
		name = config.Algorithm
	}
	if name != "" {
		return matching.ParseAlgorithm(name)
	}

	_, selected, err := algorithmPrompt.Run()
	if err != nil {
		return 0, err
	}
	return matching.ParseAlgorithm(selected)
}

func exportCSV(path, jobTitle string, batch *analysis.Batch) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return report.WriteBatchCSV(file, jobTitle, batch)
}

func saveBatch(storePath, jobTitle string, batch *analysis.Batch) error {
	s, err := store.Open(storePath)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, file := range batch.Files {
		row := &store.ResultRow{
			CVFile:      file.File,
			JobTitle:    jobTitle,
			Algorithm:   batch.Algorithm.String(),
			Matched:     file.Matched,
			Missing:     file.Missing,
			Score:       file.RelevanceScore,
			Comparisons: file.TotalComparisons,
			Elapsed:     file.TotalElapsed,
		}
		if _, err := s.SaveResult(row); err != nil {
			return fmt.Errorf("saving row for %q: %w", file.File, err)
		}
	}

	return nil
}
