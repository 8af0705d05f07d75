package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/inovacc/macromind/internal/cli"
	"github.com/inovacc/macromind/internal/day"
	"github.com/inovacc/macromind/internal/model"
	"github.com/inovacc/macromind/internal/nutrition"
	"github.com/spf13/cobra"
)

var (
	logDate string
	logJSON bool
)

// dayReport is the JSON shape of the log command.
type dayReport struct {
	Date    string            `json:"date"`
	Entries []model.FoodEntry `json:"entries"`
	Totals  nutrition.Totals  `json:"totals"`
	Goals   model.DailyGoals  `json:"goals"`
	Left    float64           `json:"remaining_calories"`
}

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"ls", "today"},
	Short:   "Show the food log and totals for a day",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		defer s.Close()

		now := s.tracker.Now()

		selected, err := parseDay(logDate, now)
		if err != nil {
			return err
		}

		entries := s.tracker.EntriesOn(selected)
		sum := s.tracker.Summary(selected)

		if logJSON {
			return writeJSON(cmd.OutOrStdout(), dayReport{
				Date:    selected.Format("2006-01-02"),
				Entries: entries,
				Totals:  sum.Totals,
				Goals:   sum.Goals,
				Left:    sum.RemainingCalories,
			})
		}

		printDay(cmd.OutOrStdout(), day.Label(selected, now), entries, sum, s.tracker.Location())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Day to show: YYYY-MM-DD, today or yesterday")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "Output as JSON")
}

func printDay(w io.Writer, label string, entries []model.FoodEntry, sum nutrition.Day, loc *time.Location) {
	_, _ = fmt.Fprintf(w, "%s\n\n", label)

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No food logged yet.")
	}

	for _, e := range entries {
		_, _ = fmt.Fprintln(w, describeEntry(e, loc))
	}

	t, g := sum.Totals, sum.Goals

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Calories  %s / %s kcal (%d%%)\n", cli.FormatInt(t.Calories), cli.FormatInt(g.Calories), sum.Calories.Label)
	_, _ = fmt.Fprintf(w, "Protein   %s / %s (%d%%)\n", cli.FormatGrams(t.Protein), cli.FormatGrams(g.Protein), sum.Protein.Label)
	_, _ = fmt.Fprintf(w, "Carbs     %s / %s (%d%%)\n", cli.FormatGrams(t.Carbs), cli.FormatGrams(g.Carbs), sum.Carbs.Label)
	_, _ = fmt.Fprintf(w, "Fat       %s / %s (%d%%)\n", cli.FormatGrams(t.Fat), cli.FormatGrams(g.Fat), sum.Fat.Label)

	if g.Calories > 0 && t.Calories > g.Calories {
		_, _ = fmt.Fprintf(w, "\n%s kcal over\n", cli.FormatInt(t.Calories-g.Calories))
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s kcal left\n", cli.FormatInt(sum.RemainingCalories))
}
