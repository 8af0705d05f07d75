package model

// DailyGoals holds the user's daily targets.
type DailyGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultGoals returns the goals used when none are stored.
func DefaultGoals() DailyGoals {
	return DailyGoals{
		Calories: 2000,
		Protein:  150,
		Carbs:    200,
		Fat:      65,
	}
}

// Theme is the persisted color scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// ThemeFor maps an ambient dark-background flag to a theme.
func ThemeFor(darkBackground bool) Theme {
	if darkBackground {
		return ThemeDark
	}

	return ThemeLight
}
