package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/macromind/internal/estimator"
	"github.com/inovacc/macromind/internal/model"
	"github.com/inovacc/macromind/internal/store"
	"github.com/inovacc/macromind/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testLoc = time.FixedZone("UTC+2", 2*60*60)
	testNow = time.Date(2026, 3, 10, 9, 15, 0, 0, testLoc)
)

func newTestApp(t *testing.T, est estimator.Estimator) (*App, *tracker.Tracker) {
	t.Helper()

	kv, err := store.NewBolt(filepath.Join(t.TempDir(), "ui.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	seq := 0
	tr := tracker.New(store.NewRecords(kv, nil),
		tracker.WithClock(func() time.Time { return testNow }),
		tracker.WithLocation(testLoc),
		tracker.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	tr.Load()
	t.Cleanup(tr.Close)

	return NewApp(context.Background(), tr, est, nil), tr
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a *App, msgs ...tea.Msg) {
	for _, m := range msgs {
		a.Update(m)
	}
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.Update(runes(string(r)))
	}
}

type stubEstimator struct {
	n   model.Nutrition
	err error
}

func (s stubEstimator) Estimate(context.Context, string) (model.Nutrition, error) {
	return s.n, s.err
}

func TestApp_ManualEntry(t *testing.T) {
	a, tr := newTestApp(t, nil)

	press(a, runes("a"), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, screenAdd, a.screen)
	assert.Equal(t, modeManual, a.add.mode)

	for _, v := range []string{"Oatmeal", "350", "12", "60", "6"} {
		typeText(a, v)
		press(a, tea.KeyMsg{Type: tea.KeyEnter})
	}

	assert.Equal(t, screenMain, a.screen)

	entries := tr.EntriesOn(testNow)
	require.Len(t, entries, 1)
	assert.Equal(t, "Oatmeal", entries[0].Name)
	assert.Equal(t, 350.0, entries[0].Calories)
	assert.Contains(t, a.View(), "Oatmeal")
	assert.Contains(t, a.View(), "1,650 kcal left")
}

func TestApp_ManualEntryRejectsMissingCalories(t *testing.T) {
	a, tr := newTestApp(t, nil)

	press(a, runes("a"), tea.KeyMsg{Type: tea.KeyTab})
	typeText(a, "Mystery")

	for range 5 {
		press(a, tea.KeyMsg{Type: tea.KeyEnter})
	}

	assert.Equal(t, screenAdd, a.screen)
	assert.Equal(t, "Please enter calories.", a.add.err)
	assert.Empty(t, tr.Entries())
}

func TestApp_EstimateLandsOnIssuingDay(t *testing.T) {
	est := stubEstimator{n: model.Nutrition{Name: "Pasta", Calories: 600, Protein: 20, Carbs: 90, Fat: 15}}
	a, tr := newTestApp(t, est)

	press(a, runes("a"))
	typeText(a, "a plate of pasta")
	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.add.pending)

	issuedFor := a.nav.Selected()

	// the user keeps navigating while the request is in flight
	press(a, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})

	msg := estimateCmd(context.Background(), est, "a plate of pasta", issuedFor)()
	press(a, msg)

	assert.False(t, a.add.pending)
	assert.Len(t, tr.EntriesOn(testNow), 1)
	assert.Empty(t, tr.EntriesOn(testNow.AddDate(0, 0, -2)))
	assert.Contains(t, a.status, "Added Pasta")
}

func TestApp_EstimateFailureMutatesNothing(t *testing.T) {
	a, tr := newTestApp(t, stubEstimator{err: estimator.ErrMalformedResponse})

	press(a, runes("a"))
	typeText(a, "something odd")
	press(a, tea.KeyMsg{Type: tea.KeyEnter})

	press(a, estimateMsg{day: testNow, description: "something odd", err: estimator.ErrMalformedResponse})

	assert.Empty(t, tr.Entries())
	assert.Equal(t, screenAdd, a.screen)
	assert.Equal(t, msgAnalyzeFailed, a.add.err)
}

func TestApp_DisabledEstimator(t *testing.T) {
	assert.Equal(t, msgAINotReady, estimateErrorText(estimator.ErrNotConfigured))
	assert.Equal(t, msgAnalyzeFailed, estimateErrorText(&estimator.RequestError{StatusCode: 500}))
}

func TestApp_NavigationStopsAtToday(t *testing.T) {
	a, _ := newTestApp(t, nil)

	press(a, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, a.nav.IsToday())

	press(a, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Yesterday", a.nav.Label())

	press(a, runes("t"))
	assert.Equal(t, "Today", a.nav.Label())
}

func TestApp_SelectDay(t *testing.T) {
	a, tr := newTestApp(t, nil)
	tr.AddEntry(model.Nutrition{Name: "Soup", Calories: 200}, testNow.AddDate(0, 0, -3))

	assert.False(t, a.SelectDay(testNow.AddDate(0, 0, 1)), "future days are refused")
	assert.True(t, a.nav.IsToday())

	require.True(t, a.SelectDay(testNow.AddDate(0, 0, -3)))
	assert.Equal(t, testNow.AddDate(0, 0, -3).Format("Mon, Jan 2"), a.nav.Label())
	assert.Contains(t, a.View(), "Soup")
}

func TestApp_ClearDayNeedsConfirmation(t *testing.T) {
	a, tr := newTestApp(t, nil)
	tr.AddEntry(model.Nutrition{Name: "Toast", Calories: 120}, testNow)

	press(a, runes("c"))
	assert.Equal(t, screenConfirmClear, a.screen)
	assert.Equal(t, "Are you sure you want to clear today's log?", a.prompt)

	press(a, runes("n"))
	assert.Len(t, tr.Entries(), 1)

	press(a, runes("c"), runes("y"))
	assert.Empty(t, tr.Entries())
	assert.Equal(t, screenMain, a.screen)
}

func TestApp_FavoritesFlow(t *testing.T) {
	a, tr := newTestApp(t, nil)
	tr.AddEntry(model.Nutrition{Name: "Banana", Calories: 105}, testNow)

	press(a, runes("f"))
	require.Len(t, tr.Favorites(), 1)

	press(a, runes("f"))
	assert.True(t, a.statusErr)
	assert.Equal(t, "Banana is already in your favorites.", a.status)

	press(a, runes("a"), tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, modeFavorites, a.add.mode)

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, tr.EntriesOn(testNow), 2)

	press(a, runes("a"), runes("x"))
	assert.Empty(t, tr.Favorites())
}

func TestApp_DeleteSelected(t *testing.T) {
	a, tr := newTestApp(t, nil)
	tr.AddEntry(model.Nutrition{Name: "A", Calories: 1}, testNow)
	tr.AddEntry(model.Nutrition{Name: "B", Calories: 2}, testNow)

	press(a, runes("j"), runes("d"))

	entries := tr.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].Name)
	assert.Zero(t, a.cursor)
}

func TestApp_GoalsForm(t *testing.T) {
	a, tr := newTestApp(t, nil)

	press(a, runes("g"))
	require.Equal(t, screenGoals, a.screen)

	// replace calories, keep the rest
	for range 4 {
		press(a, tea.KeyMsg{Type: tea.KeyBackspace})
	}

	typeText(a, "1800")

	for range 4 {
		press(a, tea.KeyMsg{Type: tea.KeyEnter})
	}

	assert.Equal(t, screenMain, a.screen)
	assert.Equal(t, model.DailyGoals{Calories: 1800, Protein: 150, Carbs: 200, Fat: 65}, tr.Goals())
}

func TestApp_ToggleTheme(t *testing.T) {
	a, tr := newTestApp(t, nil)
	before := tr.Theme()

	press(a, runes("T"))

	assert.Equal(t, before.Toggle(), tr.Theme())
	assert.Equal(t, NewStyles(tr.Theme()).Palette, a.styles.Palette)
}
