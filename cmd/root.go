package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/interviewer/internal/config"
	"github.com/abhisek/interviewer/internal/logger"
	"github.com/abhisek/interviewer/internal/questionbank"
	"github.com/abhisek/interviewer/internal/resume"
)

const app = "interviewer"

var (
	// Used for flags.
	cfgFile string

	v = config.NewViper()

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "Adaptive technical interview simulator",
		Long: "interviewer runs a mock technical interview in the terminal: it plans questions " +
			"across the candidate's skills, scores each answer and prints a final report.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(v, cfgFile)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.FileName+" in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("bank", "", "question bank file (default is the built-in bank)")

	v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	v.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	v.BindPFlag("bank", rootCmd.PersistentFlags().Lookup("bank"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(versionCmd)
}

// env holds what every command needs once config is loaded.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	bank   *questionbank.Bank
}

// loadEnv decodes the config, builds the logger and loads the bank.
func loadEnv() (*env, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	l, err := logger.New(cfg.JSON, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	bank, err := loadBank(cfg.Bank)
	if err != nil {
		return nil, err
	}
	l.Debug("question bank loaded",
		zap.String("source", bankSource(cfg.Bank)),
		zap.Int("skills", len(bank.Keys())),
		zap.Int("questions", bank.Len()),
	)

	return &env{cfg: cfg, logger: l, bank: bank}, nil
}

func loadBank(path string) (*questionbank.Bank, error) {
	if path == "" {
		return questionbank.Default()
	}
	return questionbank.LoadFile(path)
}

func bankSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func loadDetector(path string) (*resume.Detector, error) {
	var (
		cat *resume.Catalog
		err error
	)
	if path == "" {
		cat, err = resume.DefaultCatalog()
	} else {
		cat, err = resume.LoadCatalog(path)
	}
	if err != nil {
		return nil, err
	}
	return resume.NewDetector(cat), nil
}
