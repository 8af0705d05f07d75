package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/inovacc/macromind/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	clearDate string
	clearYes  bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every entry logged on a day",
	Long: `Delete every entry logged on a day (today by default).

You are asked to confirm unless --yes is given. Without a terminal to ask
on, the command refuses to clear.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		defer s.Close()

		selected, err := parseDay(clearDate, s.tracker.Now())
		if err != nil {
			return err
		}

		confirm := tracker.ConfirmFunc(func(prompt string) bool {
			if clearYes {
				return true
			}

			if !isTerminal(os.Stdin) {
				return false
			}

			return promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt+" [y/N]: ")
		})

		removed, err := s.tracker.ClearDay(selected, confirm)
		if errors.Is(err, tracker.ErrNotConfirmed) {
			if !clearYes && !isTerminal(os.Stdin) {
				return errors.New("refusing to clear without confirmation; pass --yes")
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")

			return nil
		}

		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", removed)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().StringVarP(&clearDate, "date", "d", "", "Day to clear: YYYY-MM-DD, today or yesterday")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation prompt")
}
