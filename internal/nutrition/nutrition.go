// Package nutrition reduces food entries to totals and compares them with
// the daily goals.
package nutrition

import (
	"math"

	"github.com/inovacc/macromind/internal/model"
)

// Totals is the sum of a set of entries.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Aggregate sums every nutrition field. An empty list yields zero totals.
func Aggregate(entries []model.FoodEntry) Totals {
	var t Totals

	for _, e := range entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
	}

	return t
}

// Percent is a progress value for display.
type Percent struct {
	// Bar is the fill percentage, clamped to [0, 100].
	Bar float64
	// Label is the rounded, unclamped percentage; it may exceed 100.
	Label int
}

// Progress compares current with goal. A goal of zero or less has nothing
// to divide by and yields 0%.
func Progress(current, goal float64) Percent {
	if goal <= 0 {
		return Percent{}
	}

	pct := current / goal * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return Percent{}
	}

	return Percent{
		Bar:   math.Min(100, math.Max(0, pct)),
		Label: int(math.Round(pct)),
	}
}

// Remaining returns how much of goal is left, never below zero.
func Remaining(goal, consumed float64) float64 {
	return math.Max(0, goal-consumed)
}

// IsOverGoal reports whether a day's calories exceed the goal.
func IsOverGoal(calories, goal float64) bool {
	return calories > goal
}
