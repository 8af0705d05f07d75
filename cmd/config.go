package cmd

import (
	"fmt"

	"github.com/inovacc/macromind/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect MacroMind configuration",
	Long: `Commands for inspecting MacroMind configuration.

Settings come from config.yaml, MACROMIND_* environment variables, .env
files and flags, in increasing order of precedence.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *appCfg
		cfg.Estimator.APIKey = maskSecret(cfg.Estimator.APIKey)

		data, err := yaml.Marshal(&cfg)
		if err != nil {
			return err
		}

		_, _ = cmd.OutOrStdout().Write(data)

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}

			path = p
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// maskSecret keeps the last four characters of a secret.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}

	if len(s) <= 4 {
		return "****"
	}

	return "****" + s[len(s)-4:]
}
