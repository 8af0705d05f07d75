package store

import (
	"log/slog"

	"github.com/inovacc/macromind/internal/encoding"
	"github.com/inovacc/macromind/internal/model"
)

// Logical record keys. Each one is read and written independently.
const (
	KeyEntries    = "macromind_entries"
	KeySavedFoods = "macromind_saved_foods"
	KeyGoals      = "macromind_goals"
	KeyTheme      = "macromind_theme"
)

// Load reads key from kv and decodes it as T. A missing key yields def.
// Read and parse failures are logged and also yield def.
func Load[T any](kv KV, key string, def T, logger *slog.Logger) T {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := kv.Get(key)
	if err != nil {
		logger.Warn("failed to read record, using default",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return def
	}

	if data == nil {
		return def
	}

	value, err := encoding.ParseJSON[T](data)
	if err != nil {
		logger.Warn("failed to parse record, using default",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return def
	}

	return value
}

// Save encodes the full value and writes it under key.
func Save[T any](kv KV, key string, value T) error {
	data, err := encoding.ToJSON(value)
	if err != nil {
		return err
	}

	return kv.Put(key, data)
}

// Records gives named access to the persisted MacroMind records.
type Records struct {
	kv     KV
	logger *slog.Logger
}

// NewRecords wraps kv. A nil logger means slog.Default().
func NewRecords(kv KV, logger *slog.Logger) *Records {
	if logger == nil {
		logger = slog.Default()
	}

	return &Records{kv: kv, logger: logger}
}

// KV returns the underlying engine.
func (r *Records) KV() KV {
	return r.kv
}

func (r *Records) Entries() []model.FoodEntry {
	entries := Load(r.kv, KeyEntries, []model.FoodEntry{}, r.logger)
	if entries == nil {
		// a stored JSON null decodes to a nil slice
		return []model.FoodEntry{}
	}

	return entries
}

func (r *Records) SavedFoods() []model.SavedFood {
	foods := Load(r.kv, KeySavedFoods, []model.SavedFood{}, r.logger)
	if foods == nil {
		return []model.SavedFood{}
	}

	return foods
}

// goalsRecord detects fields missing from the stored goals.
type goalsRecord struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

// Goals returns the stored goals. A record that is null, incomplete or
// holds an invalid amount yields the default goals.
func (r *Records) Goals() model.DailyGoals {
	rec := Load[*goalsRecord](r.kv, KeyGoals, nil, r.logger)
	if rec == nil {
		return model.DefaultGoals()
	}

	if rec.Calories == nil || rec.Protein == nil || rec.Carbs == nil || rec.Fat == nil {
		r.logger.Warn("incomplete goals record, using default", slog.String("key", KeyGoals))
		return model.DefaultGoals()
	}

	goals := model.DailyGoals{
		Calories: *rec.Calories,
		Protein:  *rec.Protein,
		Carbs:    *rec.Carbs,
		Fat:      *rec.Fat,
	}

	if err := goals.Validate(); err != nil {
		r.logger.Warn("invalid goals record, using default",
			slog.String("key", KeyGoals),
			slog.String("error", err.Error()),
		)

		return model.DefaultGoals()
	}

	return goals
}

// Theme returns the stored theme, or ok=false when none is stored or the
// stored value is unknown.
func (r *Records) Theme() (model.Theme, bool) {
	data, err := r.kv.Get(KeyTheme)
	if err != nil {
		r.logger.Warn("failed to read theme", slog.String("error", err.Error()))
		return "", false
	}

	if data == nil {
		return "", false
	}

	t := model.Theme(data)
	if !t.Valid() {
		r.logger.Warn("ignoring unknown theme", slog.String("value", string(data)))
		return "", false
	}

	return t, true
}

func (r *Records) SaveEntries(entries []model.FoodEntry) error {
	return Save(r.kv, KeyEntries, entries)
}

func (r *Records) SaveSavedFoods(foods []model.SavedFood) error {
	return Save(r.kv, KeySavedFoods, foods)
}

func (r *Records) SaveGoals(goals model.DailyGoals) error {
	return Save(r.kv, KeyGoals, goals)
}

// SaveTheme stores the theme as the bare string "dark" or "light".
func (r *Records) SaveTheme(t model.Theme) error {
	return r.kv.Put(KeyTheme, []byte(t))
}
