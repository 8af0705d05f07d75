package model

import (
	"strings"
	"time"
)

// Nutrition is the nutrition payload shared by manual input, AI estimates
// and favorite templates.
type Nutrition struct {
	// Name is the display name of the food (e.g., "Oatmeal")
	Name string `json:"name"`

	// Calories in kcal
	Calories float64 `json:"calories"`

	// Protein in grams
	Protein float64 `json:"protein"`

	// Carbs in grams
	Carbs float64 `json:"carbs"`

	// Fat in grams
	Fat float64 `json:"fat"`
}

// FoodEntry is a single logged food item.
type FoodEntry struct {
	// ID is the unique identifier (UUID)
	ID string `json:"id"`

	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	// Timestamp is milliseconds since the Unix epoch
	Timestamp int64 `json:"timestamp"`
}

// Nutrition returns the entry's nutrition payload.
func (e FoodEntry) Nutrition() Nutrition {
	return Nutrition{
		Name:     e.Name,
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
	}
}

// Time returns the entry timestamp in loc.
func (e FoodEntry) Time(loc *time.Location) time.Time {
	return time.UnixMilli(e.Timestamp).In(loc)
}

// SavedFood is a reusable nutrition template (a favorite).
type SavedFood struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Nutrition returns the favorite's nutrition payload.
func (f SavedFood) Nutrition() Nutrition {
	return Nutrition{
		Name:     f.Name,
		Calories: f.Calories,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fat:      f.Fat,
	}
}

// SameName reports whether two food names match case-insensitively.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
