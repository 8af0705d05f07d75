package cmd

import (
	"fmt"
	"strconv"

	"github.com/inovacc/macromind/internal/cli"
	"github.com/inovacc/macromind/internal/model"
	"github.com/spf13/cobra"
)

var (
	goalsCalories string
	goalsProtein  string
	goalsCarbs    string
	goalsFat      string
	goalsReset    bool
	goalsJSON     bool
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show or change daily goals",
	Long: `Show the daily goals, or change them with flags. Goals not given keep
their current value.

  macromind goals --calories 1800 --protein 140`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		defer s.Close()

		goals := s.tracker.Goals()
		changed := false

		switch {
		case goalsReset:
			goals, changed = model.DefaultGoals(), true
		case anyChanged(cmd, "calories", "protein", "carbs", "fat"):
			goals, err = model.ParseGoals(
				flagOr(cmd, "calories", goalsCalories, goals.Calories),
				flagOr(cmd, "protein", goalsProtein, goals.Protein),
				flagOr(cmd, "carbs", goalsCarbs, goals.Carbs),
				flagOr(cmd, "fat", goalsFat, goals.Fat),
			)
			if err != nil {
				return err
			}

			changed = true
		}

		if changed {
			s.tracker.SetGoals(goals)
		}

		if goalsJSON {
			return writeJSON(cmd.OutOrStdout(), goals)
		}

		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(w, "Calories  %s kcal\n", cli.FormatInt(goals.Calories))
		_, _ = fmt.Fprintf(w, "Protein   %s\n", cli.FormatGrams(goals.Protein))
		_, _ = fmt.Fprintf(w, "Carbs     %s\n", cli.FormatGrams(goals.Carbs))
		_, _ = fmt.Fprintf(w, "Fat       %s\n", cli.FormatGrams(goals.Fat))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
	goalsCmd.Flags().StringVar(&goalsCalories, "calories", "", "Daily calorie goal in kcal")
	goalsCmd.Flags().StringVar(&goalsProtein, "protein", "", "Daily protein goal in grams")
	goalsCmd.Flags().StringVar(&goalsCarbs, "carbs", "", "Daily carbs goal in grams")
	goalsCmd.Flags().StringVar(&goalsFat, "fat", "", "Daily fat goal in grams")
	goalsCmd.Flags().BoolVar(&goalsReset, "reset", false, "Restore the default goals")
	goalsCmd.Flags().BoolVar(&goalsJSON, "json", false, "Output as JSON")
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}

	return false
}

// flagOr returns the flag value when it was set, otherwise current.
func flagOr(cmd *cobra.Command, name, value string, current float64) string {
	if cmd.Flags().Changed(name) {
		return value
	}

	return strconv.FormatFloat(current, 'f', -1, 64)
}
