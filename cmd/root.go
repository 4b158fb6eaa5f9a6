package cmd

import (
	"errors"
	"log"

	"github.com/spigell/cv-scanner/internal/matching"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "cv-scanner"

	defaultStorePath = "cv-scanner.db"
)

type Config struct {
	Keywords      []string    `mapstructure:"keywords"`
	KeywordsFile  string      `mapstructure:"keywords-file"`
	Algorithm     string      `mapstructure:"algorithm"`
	CaseSensitive bool        `mapstructure:"case-sensitive"`
	Store         string      `mapstructure:"store"`
	Job           string      `mapstructure:"job"`
	Hash          *HashConfig `mapstructure:"hash"`
}

type HashConfig struct {
	Base    int64 `mapstructure:"base"`
	Modulus int64 `mapstructure:"modulus"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-scanner matches job description keywords against CV documents and scores their relevance",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("store", "CV_SCANNER_STORE"); err != nil {
		log.Fatalf("binding CV_SCANNER_STORE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-scanner.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: keywords can come from flags or the
	// store. An explicitly requested file still has to parse.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Store == "" {
		config.Store = defaultStorePath
	}

	return config, nil
}

func (c *Config) matchingOptions() *matching.Options {
	opts := &matching.Options{CaseSensitive: c.CaseSensitive}
	if c.Hash != nil {
		opts.Base = c.Hash.Base
		opts.Modulus = c.Hash.Modulus
	}
	return opts
}
