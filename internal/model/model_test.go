package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDefaultGoals(t *testing.T) {
	g := DefaultGoals()

	if g.Calories != 2000 {
		t.Errorf("Calories = %v, want %v", g.Calories, 2000)
	}

	if g.Protein != 150 {
		t.Errorf("Protein = %v, want %v", g.Protein, 150)
	}

	if g.Carbs != 200 {
		t.Errorf("Carbs = %v, want %v", g.Carbs, 200)
	}

	if g.Fat != 65 {
		t.Errorf("Fat = %v, want %v", g.Fat, 65)
	}
}

func TestFoodEntry_JSONFieldNames(t *testing.T) {
	e := FoodEntry{ID: "abc", Name: "Oatmeal", Calories: 350, Protein: 12, Carbs: 60, Fat: 6, Timestamp: 1700000000000}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"id", "name", "calories", "protein", "carbs", "fat", "timestamp"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("JSON is missing key %q: %s", key, data)
		}
	}
}

func TestFoodEntry_Time(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	e := FoodEntry{Timestamp: time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC).UnixMilli()}

	got := e.Time(loc)
	if got.Day() != 6 || got.Hour() != 1 {
		t.Errorf("Time() = %v, want 2026-01-06 01:30 in UTC+2", got)
	}
}

func TestNutritionConversions(t *testing.T) {
	e := FoodEntry{ID: "1", Name: "Rice", Calories: 200, Protein: 4, Carbs: 45, Fat: 0.4, Timestamp: 1}
	f := SavedFood{ID: "2", Name: "Rice", Calories: 200, Protein: 4, Carbs: 45, Fat: 0.4}

	if e.Nutrition() != f.Nutrition() {
		t.Errorf("entry nutrition %+v != favorite nutrition %+v", e.Nutrition(), f.Nutrition())
	}
}

func TestSameName(t *testing.T) {
	if !SameName("Banana", "banana") {
		t.Error("SameName(Banana, banana) = false, want true")
	}

	if SameName("Banana", "Bananas") {
		t.Error("SameName(Banana, Bananas) = true, want false")
	}
}

func TestTheme(t *testing.T) {
	if !ThemeDark.Valid() || !ThemeLight.Valid() || Theme("blue").Valid() {
		t.Error("Theme.Valid() mismatch")
	}

	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
		t.Error("Theme.Toggle() mismatch")
	}

	if ThemeFor(true) != ThemeDark || ThemeFor(false) != ThemeLight {
		t.Error("ThemeFor() mismatch")
	}
}
