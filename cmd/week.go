package cmd

import (
	"fmt"
	"strings"

	"github.com/inovacc/macromind/internal/cli"
	"github.com/spf13/cobra"
)

var weekJSON bool

const weekBarWidth = 30

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show calories for the last seven days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		defer s.Close()

		week := s.tracker.Week()
		if weekJSON {
			return writeJSON(cmd.OutOrStdout(), week)
		}

		goal := s.tracker.Goals().Calories
		scale := goal
		for _, d := range week {
			scale = max(scale, float64(d.Calories))
		}

		w := cmd.OutOrStdout()
		for _, d := range week {
			n := 0
			if scale > 0 {
				n = int(float64(d.Calories) / scale * weekBarWidth)
			}

			marker := ""
			switch {
			case d.IsOver:
				marker = "  over"
			case d.IsToday:
				marker = "  today"
			}

			_, _ = fmt.Fprintf(w, "%s %-6s %-*s %6s kcal%s\n",
				d.Day, d.Date, weekBarWidth, strings.Repeat("#", n), cli.FormatInt(float64(d.Calories)), marker)
		}

		_, _ = fmt.Fprintf(w, "\nGoal: %s kcal\n", cli.FormatInt(goal))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().BoolVar(&weekJSON, "json", false, "Output as JSON")
}
