package nutrition

import (
	"math"
	"time"

	"github.com/inovacc/macromind/internal/day"
	"github.com/inovacc/macromind/internal/model"
)

// Day is the derived dashboard view of one day's entries.
type Day struct {
	Totals            Totals
	Goals             model.DailyGoals
	RemainingCalories float64
	Calories          Percent
	Protein           Percent
	Carbs             Percent
	Fat               Percent
}

// Summarize builds the dashboard view for entries already filtered to a day.
func Summarize(entries []model.FoodEntry, goals model.DailyGoals) Day {
	totals := Aggregate(entries)

	return Day{
		Totals:            totals,
		Goals:             goals,
		RemainingCalories: Remaining(goals.Calories, totals.Calories),
		Calories:          Progress(totals.Calories, goals.Calories),
		Protein:           Progress(totals.Protein, goals.Protein),
		Carbs:             Progress(totals.Carbs, goals.Carbs),
		Fat:               Progress(totals.Fat, goals.Fat),
	}
}

// WeekDay is one bar of the week summary.
type WeekDay struct {
	Start    time.Time
	Day      string // "Mon"
	Date     string // "Jan 5"
	Calories int
	IsOver   bool
	IsToday  bool
}

// Week totals calories per trailing-week bucket and flags days over goal.
func Week(entries []model.FoodEntry, buckets []day.Bucket, goals model.DailyGoals, now time.Time) []WeekDay {
	out := make([]WeekDay, 0, len(buckets))

	for _, b := range buckets {
		var calories float64

		for _, e := range entries {
			if b.Contains(e.Timestamp) {
				calories += e.Calories
			}
		}

		out = append(out, WeekDay{
			Start:    b.Start,
			Day:      b.Start.Format("Mon"),
			Date:     b.Start.Format("Jan 2"),
			Calories: int(math.Round(calories)),
			IsOver:   IsOverGoal(calories, goals.Calories),
			IsToday:  day.Same(b.Start, now),
		})
	}

	return out
}
