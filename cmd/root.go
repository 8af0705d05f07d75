package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/inovacc/macromind/internal/application"
	"github.com/inovacc/macromind/internal/cli"
	"github.com/inovacc/macromind/internal/config"
	"github.com/inovacc/macromind/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	uiDate  string

	v         = config.New()
	appCfg    *config.Config
	appLogger *slog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A personal nutrition tracker",
	Long: `MacroMind logs what you eat and tracks calories, protein, carbs and fat
against daily goals.

Run without a command to open the interactive dashboard. Describe a meal in
plain words and an AI model estimates its nutrition, or enter the numbers
yourself. Everything is stored locally.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
	RunE: runUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		closeLog()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default <config dir>/macromind/config.yaml)")
	flags.String("data-dir", "", "directory for the database and log file")
	flags.String("driver", "", "storage engine: bolt or sqlite")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("provider", "", "AI provider: gemini or openai")

	rootCmd.Flags().StringVarP(&uiDate, "date", "d", "", "Day to open the dashboard on: YYYY-MM-DD or yesterday")
}

// initApp loads configuration and starts file logging once per process.
func initApp(cmd *cobra.Command, _ []string) error {
	if appCfg != nil {
		return nil
	}

	if err := config.BindFlags(v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	dir, err := cfg.DataDir()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.Log, dir)
	if err != nil {
		return err
	}

	appCfg, appLogger, logCloser = cfg, logger, closer

	appLogger.Debug("configuration loaded",
		slog.String("data_dir", dir),
		slog.String("driver", cfg.Storage.Driver),
		slog.String("provider", cfg.Estimator.Provider),
	)

	return nil
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

func runUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return fmt.Errorf("the dashboard needs an interactive terminal; see '%s --help' for scriptable commands", application.AppExeName)
	}

	s, err := openSession(withThemeDetection())
	if err != nil {
		return err
	}

	defer s.Close()

	var start time.Time
	if uiDate != "" {
		if start, err = parseDay(uiDate, s.tracker.Now()); err != nil {
			return err
		}
	}

	return cli.Run(cmd.Context(), s.tracker, s.estimator, s.logger, start)
}
