// Package root contains the root command for the application
package root

import (
	"rsharma/phonepe-csv/internal/categorizer"
	"rsharma/phonepe-csv/internal/common"
	"rsharma/phonepe-csv/internal/config"
	"rsharma/phonepe-csv/internal/logging"
	"rsharma/phonepe-csv/internal/statement"
	"rsharma/phonepe-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	engine *categorizer.Engine

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "phonepe-csv",
		Short: "A CLI tool to extract and categorize PhonePe statement transactions.",
		Long: `phonepe-csv converts the text export of a PhonePe statement into
normalized transaction records, categorizes them by counterparty name,
and learns category rules from user corrections.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to phonepe-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			statement.SetLogger(Log)
			common.SetLogger(Log)

			if Cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
		// Flush any learned mappings when ANY command finishes. Commands
		// that must guarantee durability save explicitly; this is the
		// end-of-run sweep.
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if engine == nil {
				return
			}
			if err := engine.SaveMappings(); err != nil {
				Log.Warnf("Failed to save name-category mappings: %v", err)
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific categorize command flags
	PartyName   string
	NewCategory string

	// Specific review command flags
	EditedFile string

	// DebitsOnly restricts convert/summary to debit transactions
	DebitsOnly bool
)

// Engine returns the categorization engine, constructing it on first use
// from the configured store. An unreadable store is fatal: running
// without the learned mappings would drop every past correction.
func Engine() *categorizer.Engine {
	if engine != nil {
		return engine
	}

	logger := logging.NewLogrusAdapterFromLogger(Log)
	categoryStore := store.NewCategoryStore(Cfg.MappingsPath(), Cfg.CategoriesPath(), logger)

	var err error
	engine, err = categorizer.NewEngine(categoryStore, logger)
	if err != nil {
		Log.Fatalf("Failed to initialize categorization engine: %v", err)
	}
	return engine
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
