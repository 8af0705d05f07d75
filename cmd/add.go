package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inovacc/macromind/internal/cli"
	"github.com/inovacc/macromind/internal/estimator"
	"github.com/inovacc/macromind/internal/model"
	"github.com/inovacc/macromind/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	addDate     string
	addFavorite string
	addName     string
	addCalories string
	addProtein  string
	addCarbs    string
	addFat      string
	addSave     bool
	addJSON     bool
)

var addCmd = &cobra.Command{
	Use:   "add [description...]",
	Short: "Log a food entry",
	Long: `Log a food entry on today or an earlier day.

A plain description is sent to the configured AI model for an estimate:
  macromind add "two eggs and a slice of toast"

Enter the numbers yourself with --name and --calories (macros default to 0):
  macromind add --name Oatmeal --calories 350 --protein 12 --carbs 60 --fat 6

Log one of your favorites by name or id:
  macromind add --favorite oatmeal`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Day to log on: YYYY-MM-DD, today or yesterday")
	addCmd.Flags().StringVarP(&addFavorite, "favorite", "f", "", "Log a saved favorite by name or id")
	addCmd.Flags().StringVar(&addName, "name", "", "Food name (manual entry)")
	addCmd.Flags().StringVar(&addCalories, "calories", "", "Calories in kcal (manual entry)")
	addCmd.Flags().StringVar(&addProtein, "protein", "", "Protein in grams")
	addCmd.Flags().StringVar(&addCarbs, "carbs", "", "Carbs in grams")
	addCmd.Flags().StringVar(&addFat, "fat", "", "Fat in grams")
	addCmd.Flags().BoolVarP(&addSave, "save", "s", false, "Also save the entry to favorites")
	addCmd.Flags().BoolVar(&addJSON, "json", false, "Output the entry as JSON")
	addCmd.MarkFlagsMutuallyExclusive("favorite", "name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	description := strings.TrimSpace(strings.Join(args, " "))
	manual := cmd.Flags().Changed("name") || cmd.Flags().Changed("calories")

	switch {
	case addFavorite != "" && (description != "" || manual):
		return errors.New("--favorite cannot be combined with a description or manual values")
	case manual && description != "":
		return errors.New("give either a description or --name/--calories, not both")
	case addFavorite == "" && !manual && description == "":
		return errors.New("describe the food, or use --name/--calories or --favorite")
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	defer s.Close()

	selected, err := parseDay(addDate, s.tracker.Now())
	if err != nil {
		return err
	}

	var entry model.FoodEntry

	switch {
	case addFavorite != "":
		fav, err := findFavorite(s.tracker, addFavorite)
		if err != nil {
			return err
		}

		entry, err = s.tracker.AddFavorite(fav.ID, selected)
		if err != nil {
			return err
		}
	case manual:
		draft, err := model.ParseManualInput(addName, addCalories, addProtein, addCarbs, addFat)
		if err != nil {
			return err
		}

		entry = s.tracker.AddEntry(draft, selected)
	default:
		draft, err := s.estimator.Estimate(cmd.Context(), description)
		if err != nil {
			s.logger.Warn("estimate failed", slog.String("description", description), slog.String("error", err.Error()))

			if errors.Is(err, estimator.ErrNotConfigured) {
				return fmt.Errorf("%w: set MACROMIND_ESTIMATOR_API_KEY or GEMINI_API_KEY, or log manually with --name/--calories", err)
			}

			return fmt.Errorf("could not analyze food: %w", err)
		}

		entry = s.tracker.AddEntry(draft, selected)
	}

	if addSave {
		if _, err := s.tracker.SaveToFavorites(entry); err != nil {
			var dup *tracker.DuplicateFavoriteError
			if !errors.As(err, &dup) {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
		}
	}

	if addJSON {
		return writeJSON(cmd.OutOrStdout(), entry)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s kcal)\n", entry.Name, cli.FormatInt(entry.Calories))

	return nil
}
