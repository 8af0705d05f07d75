package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/macromind/internal/cli"
	"github.com/inovacc/macromind/internal/config"
	"github.com/inovacc/macromind/internal/day"
	"github.com/inovacc/macromind/internal/encoding"
	"github.com/inovacc/macromind/internal/estimator"
	"github.com/inovacc/macromind/internal/model"
	"github.com/inovacc/macromind/internal/store"
	"github.com/inovacc/macromind/internal/tracker"
	"golang.org/x/term"
)

// session bundles everything a command needs and is closed when it ends.
type session struct {
	kv        store.KV
	tracker   *tracker.Tracker
	estimator estimator.Estimator
	logger    *slog.Logger
}

type sessionOption func(*[]tracker.Option)

// withThemeDetection defaults the theme to the terminal background.
func withThemeDetection() sessionOption {
	return func(opts *[]tracker.Option) {
		*opts = append(*opts, tracker.WithDefaultTheme(model.ThemeFor(lipgloss.HasDarkBackground())))
	}
}

func openSession(opts ...sessionOption) (*session, error) {
	cfg := appCfg
	if cfg == nil {
		cfg = config.Default()
	}

	logger := appLogger
	if logger == nil {
		logger = slog.Default()
	}

	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	return newSession(cfg, dir, logger, opts...)
}

func newSession(cfg *config.Config, dir string, logger *slog.Logger, opts ...sessionOption) (*session, error) {
	kv, err := store.Open(store.Driver(cfg.Storage.Driver), dir)
	if err != nil {
		return nil, err
	}

	est, err := estimator.New(cfg.EstimatorOptions(logger))
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	trackerOpts := []tracker.Option{tracker.WithLogger(logger)}
	for _, opt := range opts {
		opt(&trackerOpts)
	}

	t := tracker.New(store.NewRecords(kv, logger), trackerOpts...)
	t.Load()

	return &session{kv: kv, tracker: t, estimator: est, logger: logger}, nil
}

// Close flushes pending writes before closing the store.
func (s *session) Close() {
	s.tracker.Close()

	if err := s.kv.Close(); err != nil {
		s.logger.Error("failed to close store", slog.String("error", err.Error()))
	}
}

// parseDay resolves a --date value: "", "today", "yesterday" or YYYY-MM-DD.
// Future days are rejected.
func parseDay(value string, now time.Time) (time.Time, error) {
	today := day.Start(now)

	var d time.Time

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return day.AddDays(today, -1), nil
	default:
		parsed, err := time.ParseInLocation(time.DateOnly, value, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD, today or yesterday", value)
		}

		d = parsed
	}

	if d.After(today) {
		return time.Time{}, fmt.Errorf("%s is in the future", value)
	}

	return d, nil
}

// promptConfirm asks the user for confirmation and returns true if they confirm
func promptConfirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	var response string

	_, _ = fmt.Fscanln(in, &response)

	return response == "y" || response == "Y"
}

func writeJSON(w io.Writer, v any) error {
	data, err := encoding.ToJSONIndent(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}

func describeEntry(e model.FoodEntry, loc *time.Location) string {
	return fmt.Sprintf("%s  %-24s %6s kcal  P %s  C %s  F %s  [%s]",
		e.Time(loc).Format("15:04"),
		truncateString(e.Name, 24),
		cli.FormatInt(e.Calories),
		cli.FormatGrams(e.Protein),
		cli.FormatGrams(e.Carbs),
		cli.FormatGrams(e.Fat),
		shortID(e.ID),
	)
}

func describeFavorite(f model.SavedFood) string {
	return fmt.Sprintf("%-24s %6s kcal  P %s  C %s  F %s  [%s]",
		truncateString(f.Name, 24),
		cli.FormatInt(f.Calories),
		cli.FormatGrams(f.Protein),
		cli.FormatGrams(f.Carbs),
		cli.FormatGrams(f.Fat),
		shortID(f.ID),
	)
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}

	return id
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}

// findEntry resolves a full id or an unambiguous id prefix.
func findEntry(t *tracker.Tracker, ref string) (model.FoodEntry, error) {
	if e, ok := t.Entry(ref); ok {
		return e, nil
	}

	var matches []model.FoodEntry

	for _, e := range t.Entries() {
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return model.FoodEntry{}, fmt.Errorf("%w: %s", tracker.ErrEntryNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return model.FoodEntry{}, fmt.Errorf("id prefix %q matches %d entries", ref, len(matches))
	}
}

// findFavorite resolves an id, id prefix or case-insensitive name.
func findFavorite(t *tracker.Tracker, ref string) (model.SavedFood, error) {
	f, err := t.FindFavorite(ref)
	if err == nil || !errors.Is(err, tracker.ErrFavoriteNotFound) {
		return f, err
	}

	for _, fav := range t.Favorites() {
		if strings.HasPrefix(fav.ID, ref) {
			return fav, nil
		}
	}

	return model.SavedFood{}, err
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
