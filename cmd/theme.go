package cmd

import (
	"fmt"

	"github.com/inovacc/macromind/internal/model"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or set the dashboard theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(model.ThemeDark), string(model.ThemeLight), "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(withThemeDetection())
		if err != nil {
			return err
		}

		defer s.Close()

		if len(args) == 1 {
			switch arg := model.Theme(args[0]); {
			case arg == "toggle":
				s.tracker.ToggleTheme()
			case arg.Valid():
				s.tracker.SetTheme(arg)
			default:
				return fmt.Errorf("unknown theme %q: want dark, light or toggle", args[0])
			}
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.tracker.Theme())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
