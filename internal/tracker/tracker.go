// Package tracker owns the food log: entries, favorites, goals and theme.
// Every mutation updates memory first and then queues the affected record
// for a background write.
package tracker

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/macromind/internal/day"
	"github.com/inovacc/macromind/internal/model"
	"github.com/inovacc/macromind/internal/nutrition"
	"github.com/inovacc/macromind/internal/store"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithLocation sets the zone used for calendar days. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithLogger sets the logger used for load and write failures.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithDefaultTheme sets the theme used when none has been stored.
func WithDefaultTheme(theme model.Theme) Option {
	return func(t *Tracker) {
		if theme.Valid() {
			t.defaultTheme = theme
		}
	}
}

// WithIDGenerator overrides uuid.NewString.
func WithIDGenerator(gen func() string) Option {
	return func(t *Tracker) {
		if gen != nil {
			t.newID = gen
		}
	}
}

// Tracker is the application state container.
type Tracker struct {
	mu sync.RWMutex

	records *store.Records
	writer  *Writer

	entries   []model.FoodEntry
	favorites []model.SavedFood
	goals     model.DailyGoals
	theme     model.Theme
	themeSet  bool

	defaultTheme model.Theme
	now          func() time.Time
	loc          *time.Location
	newID        func() string
	logger       *slog.Logger
}

// New creates a tracker over records and starts its writer. Call Load to
// read persisted state and Close to stop the writer.
func New(records *store.Records, opts ...Option) *Tracker {
	t := &Tracker{
		records:      records,
		entries:      make([]model.FoodEntry, 0),
		favorites:    make([]model.SavedFood, 0),
		goals:        model.DefaultGoals(),
		defaultTheme: model.ThemeDark,
		now:          time.Now,
		loc:          time.Local,
		newID:        uuid.NewString,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.writer = NewWriter(t.logger)

	return t
}

// Load replaces in-memory state with the persisted records. Unreadable
// records fall back to their defaults.
func (t *Tracker) Load() {
	entries := t.records.Entries()
	favorites := t.records.SavedFoods()
	goals := t.records.Goals()
	theme, ok := t.records.Theme()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = entries
	t.favorites = favorites
	t.goals = goals
	t.theme = theme
	t.themeSet = ok

	t.logger.Debug("state loaded",
		slog.Int("entries", len(entries)),
		slog.Int("favorites", len(favorites)),
	)
}

// Flush waits until all queued writes have completed.
func (t *Tracker) Flush() {
	t.writer.Flush()
}

// Close drains queued writes and stops the writer.
func (t *Tracker) Close() {
	t.writer.Close()
}

// Location returns the zone used for calendar days.
func (t *Tracker) Location() *time.Location {
	return t.loc
}

// Now returns the tracker's current time in its location.
func (t *Tracker) Now() time.Time {
	return t.now().In(t.loc)
}

// Today returns the start of the current day.
func (t *Tracker) Today() time.Time {
	return day.Start(t.Now())
}

// AddEntry logs draft on selectedDay. On today the entry is stamped now;
// on another day it gets that date with the current time of day.
func (t *Tracker) AddEntry(draft model.Nutrition, selectedDay time.Time) model.FoodEntry {
	entry := model.FoodEntry{
		ID:        t.newID(),
		Name:      draft.Name,
		Calories:  draft.Calories,
		Protein:   draft.Protein,
		Carbs:     draft.Carbs,
		Fat:       draft.Fat,
		Timestamp: t.stamp(selectedDay).UnixMilli(),
	}

	t.mu.Lock()
	t.entries = append(t.entries, entry)
	t.persistEntriesLocked()
	t.mu.Unlock()

	t.logger.Debug("entry added", slog.String("id", entry.ID), slog.String("name", entry.Name))

	return entry
}

func (t *Tracker) stamp(selectedDay time.Time) time.Time {
	now := t.Now()
	selected := selectedDay.In(t.loc)

	if day.Same(selected, now) {
		return now
	}

	y, m, d := selected.Date()

	return time.Date(y, m, d, now.Hour(), now.Minute(), now.Second(), 0, t.loc)
}

// DeleteEntry removes the entry with id. Unknown ids are ignored.
func (t *Tracker) DeleteEntry(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.entries)
	t.entries = slices.DeleteFunc(t.entries, func(e model.FoodEntry) bool {
		return e.ID == id
	})

	if len(t.entries) == n {
		return false
	}

	t.persistEntriesLocked()

	return true
}

// ClearDay removes every entry logged on selectedDay after confirm agrees.
// A nil or declining confirm leaves the log untouched.
func (t *Tracker) ClearDay(selectedDay time.Time, confirm Confirmer) (int, error) {
	selected := selectedDay.In(t.loc)

	if confirm == nil || !confirm.Confirm(t.ClearPrompt(selected)) {
		return 0, ErrNotConfirmed
	}

	startMs, endMs := day.Window(selected)

	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.entries)
	t.entries = slices.DeleteFunc(t.entries, func(e model.FoodEntry) bool {
		return e.Timestamp >= startMs && e.Timestamp <= endMs
	})

	removed := n - len(t.entries)
	if removed > 0 {
		t.persistEntriesLocked()
	}

	return removed, nil
}

// ClearPrompt is the question asked before clearing selectedDay.
func (t *Tracker) ClearPrompt(selectedDay time.Time) string {
	label := "this day's"
	if day.Same(selectedDay.In(t.loc), t.Now()) {
		label = "today's"
	}

	return fmt.Sprintf("Are you sure you want to clear %s log?", label)
}

// SaveToFavorites stores entry's nutrition as a reusable favorite. Names
// are unique ignoring case.
func (t *Tracker) SaveToFavorites(entry model.FoodEntry) (model.SavedFood, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, f := range t.favorites {
		if model.SameName(f.Name, entry.Name) {
			return model.SavedFood{}, &DuplicateFavoriteError{Name: entry.Name}
		}
	}

	fav := model.SavedFood{
		ID:       t.newID(),
		Name:     entry.Name,
		Calories: entry.Calories,
		Protein:  entry.Protein,
		Carbs:    entry.Carbs,
		Fat:      entry.Fat,
	}

	t.favorites = append(t.favorites, fav)
	t.persistFavoritesLocked()

	return fav, nil
}

// RemoveFavorite deletes the favorite with id. Unknown ids are ignored.
func (t *Tracker) RemoveFavorite(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.favorites)
	t.favorites = slices.DeleteFunc(t.favorites, func(f model.SavedFood) bool {
		return f.ID == id
	})

	if len(t.favorites) == n {
		return false
	}

	t.persistFavoritesLocked()

	return true
}

// AddFavorite logs the favorite with id as a new entry on selectedDay.
func (t *Tracker) AddFavorite(id string, selectedDay time.Time) (model.FoodEntry, error) {
	fav, ok := t.Favorite(id)
	if !ok {
		return model.FoodEntry{}, fmt.Errorf("%w: %s", ErrFavoriteNotFound, id)
	}

	return t.AddEntry(fav.Nutrition(), selectedDay), nil
}

// SetGoals replaces the daily goals.
func (t *Tracker) SetGoals(goals model.DailyGoals) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.goals = goals

	records := t.records
	t.writer.Submit(store.KeyGoals, func() error {
		return records.SaveGoals(goals)
	})
}

// SetTheme stores theme. Invalid themes are ignored.
func (t *Tracker) SetTheme(theme model.Theme) {
	if !theme.Valid() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.theme = theme
	t.themeSet = true

	records := t.records
	t.writer.Submit(store.KeyTheme, func() error {
		return records.SaveTheme(theme)
	})
}

// ToggleTheme flips between light and dark and returns the new theme.
func (t *Tracker) ToggleTheme() model.Theme {
	next := t.Theme().Toggle()
	t.SetTheme(next)

	return next
}

// Entries returns a copy of every entry in insertion order.
func (t *Tracker) Entries() []model.FoodEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Clone(t.entries)
}

// EntriesOn returns the entries logged on d, oldest first.
func (t *Tracker) EntriesOn(d time.Time) []model.FoodEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return day.Filter(t.entries, d.In(t.loc))
}

// Entry looks up an entry by id.
func (t *Tracker) Entry(id string) (model.FoodEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, e := range t.entries {
		if e.ID == id {
			return e, true
		}
	}

	return model.FoodEntry{}, false
}

// Favorites returns a copy of the saved foods.
func (t *Tracker) Favorites() []model.SavedFood {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Clone(t.favorites)
}

// Favorite looks up a favorite by id.
func (t *Tracker) Favorite(id string) (model.SavedFood, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, f := range t.favorites {
		if f.ID == id {
			return f, true
		}
	}

	return model.SavedFood{}, false
}

// FindFavorite matches ref against favorite ids first, then names ignoring
// case.
func (t *Tracker) FindFavorite(ref string) (model.SavedFood, error) {
	if f, ok := t.Favorite(ref); ok {
		return f, nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, f := range t.favorites {
		if model.SameName(f.Name, ref) {
			return f, nil
		}
	}

	return model.SavedFood{}, fmt.Errorf("%w: %s", ErrFavoriteNotFound, ref)
}

// Goals returns the daily goals.
func (t *Tracker) Goals() model.DailyGoals {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.goals
}

// Theme returns the stored theme, or the default when none was stored.
func (t *Tracker) Theme() model.Theme {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.themeSet {
		return t.theme
	}

	return t.defaultTheme
}

// Summary returns the dashboard view for d.
func (t *Tracker) Summary(d time.Time) nutrition.Day {
	return nutrition.Summarize(t.EntriesOn(d), t.Goals())
}

// Week returns calorie totals for the trailing seven days.
func (t *Tracker) Week() []nutrition.WeekDay {
	now := t.Now()

	t.mu.RLock()
	defer t.mu.RUnlock()

	return nutrition.Week(t.entries, day.TrailingWeek(now), t.goals, now)
}

func (t *Tracker) persistEntriesLocked() {
	snapshot := slices.Clone(t.entries)
	records := t.records

	t.writer.Submit(store.KeyEntries, func() error {
		return records.SaveEntries(snapshot)
	})
}

func (t *Tracker) persistFavoritesLocked() {
	snapshot := slices.Clone(t.favorites)
	records := t.records

	t.writer.Submit(store.KeySavedFoods, func() error {
		return records.SaveSavedFoods(snapshot)
	})
}
