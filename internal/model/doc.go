// Package model defines the data structures used throughout MacroMind.
//
// These are the records persisted by the store package and passed between
// the tracker, the estimator and the terminal UI.
//
// # FoodEntry
//
// The [FoodEntry] struct is one logged food item:
//
//	type FoodEntry struct {
//	    ID        string  // Unique identifier (UUID)
//	    Name      string  // Display name
//	    Calories  float64 // kcal
//	    Protein   float64 // grams
//	    Carbs     float64 // grams
//	    Fat       float64 // grams
//	    Timestamp int64   // Milliseconds since epoch
//	}
//
// # SavedFood
//
// [SavedFood] is a favorite: the same nutrition fields without a timestamp.
// Favorite names are unique ignoring case (see [SameName]).
//
// # DailyGoals
//
// [DailyGoals] holds the daily targets; [DefaultGoals] returns
// {2000, 150, 200, 65}.
//
// # Input boundary
//
// [ParseManualInput] and [ParseGoals] turn raw form strings into values and
// reject blank required fields, non-numbers and negative numbers with a
// [FieldError]. Nothing past this boundary re-validates.
package model
