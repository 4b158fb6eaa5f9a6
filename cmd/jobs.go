package cmd

import (
	"log"

	"github.com/spigell/cv-scanner/internal/keywords"
	"github.com/spigell/cv-scanner/internal/logger"
	"github.com/spigell/cv-scanner/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage stored job descriptions",
}

var jobsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a job description with its keywords",
	Run: func(cmd *cobra.Command, _ []string) {
		jobsAdd(cmd)
	},
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored job descriptions",
	Run: func(_ *cobra.Command, _ []string) {
		jobsList()
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsAddCmd)
	jobsCmd.AddCommand(jobsListCmd)

	jobsAddCmd.Flags().StringP("title", "t", "", "job title (required)")
	jobsAddCmd.Flags().String("description", "", "free form job description")
	jobsAddCmd.Flags().StringP("keywords", "k", "", "comma separated keywords (required unless --keywords-file is set)")
	jobsAddCmd.Flags().String("keywords-file", "", "file with keywords, one per line")

	jobsAddCmd.MarkFlagRequired("title")
}

func jobsAdd(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	list, err := keywords.Load(keywords.Source{
		Name:   "job keywords",
		Inline: keywords.Split(cmd.Flag("keywords").Value.String()),
		File:   cmd.Flag("keywords-file").Value.String(),
	})
	if err != nil {
		logger.Fatal("resolving keywords", zap.Error(err))
	}

	s, err := store.Open(config.Store)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer s.Close()

	id, err := s.SaveJob(&store.Job{
		Title:       cmd.Flag("title").Value.String(),
		Description: cmd.Flag("description").Value.String(),
		Keywords:    list,
	})
	if err != nil {
		logger.Fatal("saving the job description", zap.Error(err))
	}

	logger.Info("job description saved",
		zap.Uint64("id", id),
		zap.String("title", cmd.Flag("title").Value.String()),
		zap.Int("keywords", len(list)),
	)
}

func jobsList() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	s, err := store.Open(config.Store)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer s.Close()

	jobs, err := s.Jobs()
	if err != nil {
		logger.Fatal("listing job descriptions", zap.Error(err))
	}

	if len(jobs) == 0 {
		logger.Info("the store has no job descriptions", zap.String("store", config.Store))
		return
	}

	for _, job := range jobs {
		logger.Info("job description",
			zap.Uint64("id", job.ID),
			zap.String("title", job.Title),
			zap.Strings("keywords", job.Keywords),
			zap.Time("created_at", job.CreatedAt),
		)
	}
}
