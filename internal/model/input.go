package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrRequired is wrapped by FieldError when a required field is blank.
var ErrRequired = errors.New("value is required")

// FieldError indicates a rejected input field
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("%s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ParseManualInput validates the manual entry form. Name and calories are
// required; blank macro fields count as zero.
func ParseManualInput(name, calories, protein, carbs, fat string) (Nutrition, error) {
	n := Nutrition{Name: strings.TrimSpace(name)}

	if n.Name == "" {
		return Nutrition{}, &FieldError{Field: "name", Err: ErrRequired}
	}

	var err error

	if n.Calories, err = parseAmount("calories", calories, true); err != nil {
		return Nutrition{}, err
	}

	if n.Protein, err = parseAmount("protein", protein, false); err != nil {
		return Nutrition{}, err
	}

	if n.Carbs, err = parseAmount("carbs", carbs, false); err != nil {
		return Nutrition{}, err
	}

	if n.Fat, err = parseAmount("fat", fat, false); err != nil {
		return Nutrition{}, err
	}

	return n, nil
}

// ParseGoals validates the goals form. Blank fields count as zero.
func ParseGoals(calories, protein, carbs, fat string) (DailyGoals, error) {
	var (
		g   DailyGoals
		err error
	)

	if g.Calories, err = parseAmount("calories", calories, false); err != nil {
		return DailyGoals{}, err
	}

	if g.Protein, err = parseAmount("protein", protein, false); err != nil {
		return DailyGoals{}, err
	}

	if g.Carbs, err = parseAmount("carbs", carbs, false); err != nil {
		return DailyGoals{}, err
	}

	if g.Fat, err = parseAmount("fat", fat, false); err != nil {
		return DailyGoals{}, err
	}

	return g, nil
}

// Validate checks a nutrition payload produced outside the input forms,
// such as an AI estimate.
func (n Nutrition) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return &FieldError{Field: "name", Err: ErrRequired}
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fat", n.Fat},
	}

	for _, f := range fields {
		if err := checkAmount(f.value); err != nil {
			return &FieldError{Field: f.name, Value: strconv.FormatFloat(f.value, 'g', -1, 64), Err: err}
		}
	}

	return nil
}

// Validate checks that every goal is a finite, non-negative number.
func (g DailyGoals) Validate() error {
	for name, v := range map[string]float64{
		"calories": g.Calories,
		"protein":  g.Protein,
		"carbs":    g.Carbs,
		"fat":      g.Fat,
	} {
		if err := checkAmount(v); err != nil {
			return &FieldError{Field: name, Value: strconv.FormatFloat(v, 'g', -1, 64), Err: err}
		}
	}

	return nil
}

func parseAmount(field, raw string, required bool) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return 0, &FieldError{Field: field, Err: ErrRequired}
		}

		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: raw, Err: errors.New("not a number")}
	}

	if err := checkAmount(v); err != nil {
		return 0, &FieldError{Field: field, Value: raw, Err: err}
	}

	return v, nil
}

func checkAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("not a finite number")
	}

	if v < 0 {
		return errors.New("must not be negative")
	}

	return nil
}
