package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/macromind/internal/day"
	"github.com/inovacc/macromind/internal/estimator"
	"github.com/inovacc/macromind/internal/model"
	"github.com/inovacc/macromind/internal/tracker"
)

type screen int

const (
	screenMain screen = iota
	screenAdd
	screenGoals
	screenConfirmClear
)

// App is the root Bubble Tea model of the food tracker.
type App struct {
	ctx       context.Context
	tracker   *tracker.Tracker
	estimator estimator.Estimator
	nav       *day.Navigator
	logger    *slog.Logger

	keys   keyMap
	help   help.Model
	styles Styles
	bars   bars
	width  int

	screen    screen
	cursor    int
	add       addForm
	goals     goalsForm
	prompt    string
	status    string
	statusErr bool
}

// NewApp creates the UI over t. est may be estimator.Disabled.
func NewApp(ctx context.Context, t *tracker.Tracker, est estimator.Estimator, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	if est == nil {
		est = estimator.Disabled{}
	}

	styles := NewStyles(t.Theme())

	return &App{
		ctx:       ctx,
		tracker:   t,
		estimator: est,
		nav:       day.NewNavigator(t.Now),
		logger:    logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		styles:    styles,
		bars:      newBars(styles.Palette, barWidth(0)),
		add:       newAddForm(),
	}
}

// Run starts the full-screen UI on the start day (today when zero) and
// blocks until the user quits.
func Run(ctx context.Context, t *tracker.Tracker, est estimator.Estimator, logger *slog.Logger, start time.Time) error {
	app := NewApp(ctx, t, est, logger)
	if !start.IsZero() && !app.SelectDay(start) {
		return fmt.Errorf("%s is in the future", start.Format(time.DateOnly))
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}

	return nil
}

// SelectDay moves the navigator to d. Future days are refused.
func (a *App) SelectDay(d time.Time) bool {
	if !a.nav.Set(d.In(a.tracker.Location())) {
		return false
	}

	a.cursor = 0

	return true
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		a.bars = newBars(a.styles.Palette, barWidth(msg.Width))

		return a, nil

	case estimateMsg:
		return a, a.applyEstimate(msg)

	case spinner.TickMsg:
		if !a.add.pending {
			return a, nil
		}

		var cmd tea.Cmd

		a.add.spinner, cmd = a.add.spinner.Update(msg)

		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case screenAdd:
			return a, a.updateAdd(msg)
		case screenGoals:
			return a, a.updateGoals(msg)
		case screenConfirmClear:
			return a, a.updateConfirm(msg)
		default:
			return a.updateMain(msg)
		}
	}

	// blink and other input messages
	switch a.screen {
	case screenAdd:
		if a.add.mode == modeAI {
			var cmd tea.Cmd

			a.add.describe, cmd = a.add.describe.Update(msg)

			return a, cmd
		}

		return a, a.add.manual.update(msg)
	case screenGoals:
		return a, a.goals.fields.update(msg)
	}

	return a, nil
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

func (a *App) dayEntries() []model.FoodEntry {
	return a.tracker.EntriesOn(a.nav.Selected())
}

func (a *App) clampCursor() {
	n := len(a.dayEntries())
	if a.cursor >= n {
		a.cursor = n - 1
	}

	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.PrevDay):
		a.nav.Prev()
		a.cursor = 0

	case key.Matches(msg, a.keys.NextDay):
		if a.nav.Next() {
			a.cursor = 0
		}

	case key.Matches(msg, a.keys.Today):
		a.nav.Reset()
		a.cursor = 0

	case key.Matches(msg, a.keys.Up):
		a.cursor--
		a.clampCursor()

	case key.Matches(msg, a.keys.Down):
		a.cursor++
		a.clampCursor()

	case key.Matches(msg, a.keys.Delete):
		entries := a.dayEntries()
		if len(entries) == 0 {
			break
		}

		e := entries[a.cursor]
		a.tracker.DeleteEntry(e.ID)
		a.clampCursor()
		a.setStatus("Deleted "+e.Name, false)

	case key.Matches(msg, a.keys.Favorite):
		entries := a.dayEntries()
		if len(entries) == 0 {
			break
		}

		fav, err := a.tracker.SaveToFavorites(entries[a.cursor])
		if err != nil {
			a.setStatus(errorText(err), true)
			break
		}

		a.setStatus("Saved "+fav.Name+" to favorites", false)

	case key.Matches(msg, a.keys.Clear):
		if len(a.dayEntries()) == 0 {
			break
		}

		a.prompt = a.tracker.ClearPrompt(a.nav.Selected())
		a.screen = screenConfirmClear

	case key.Matches(msg, a.keys.Add):
		a.screen = screenAdd
		return a, a.add.open(a.styles)

	case key.Matches(msg, a.keys.Goals):
		a.goals = newGoalsForm(a.tracker.Goals())
		a.screen = screenGoals

		return a, a.goals.fields.focusOn(0, a.styles)

	case key.Matches(msg, a.keys.Theme):
		a.styles = NewStyles(a.tracker.ToggleTheme())
		a.bars = newBars(a.styles.Palette, barWidth(a.width))

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}

	return a, nil
}

func (a *App) updateAdd(msg tea.KeyMsg) tea.Cmd {
	f := &a.add

	switch {
	case key.Matches(msg, a.keys.Back):
		f.describe.Blur()
		f.manual.blur()
		a.screen = screenMain

		return nil

	case key.Matches(msg, a.keys.NextMode):
		return f.setMode(f.mode+1, a.styles)

	case key.Matches(msg, a.keys.PrevMode):
		return f.setMode(f.mode-1, a.styles)
	}

	switch f.mode {
	case modeAI:
		if key.Matches(msg, a.keys.Submit) {
			return a.submitDescription()
		}

		var cmd tea.Cmd

		f.describe, cmd = f.describe.Update(msg)

		return cmd

	case modeManual:
		switch msg.String() {
		case "up":
			return f.manual.focusOn(f.manual.focus-1, a.styles)
		case "down":
			return f.manual.focusOn(f.manual.focus+1, a.styles)
		case "enter":
			if !f.manual.last() {
				return f.manual.focusOn(f.manual.focus+1, a.styles)
			}

			return a.submitManual()
		}

		return f.manual.update(msg)

	case modeFavorites:
		favorites := a.tracker.Favorites()

		switch {
		case key.Matches(msg, a.keys.Up):
			f.favCursor--
		case key.Matches(msg, a.keys.Down):
			f.favCursor++
		case key.Matches(msg, a.keys.Submit):
			if len(favorites) == 0 {
				return nil
			}

			fav := favorites[f.favCursor]

			entry, err := a.tracker.AddFavorite(fav.ID, a.nav.Selected())
			if err != nil {
				f.err = errorText(err)
				return nil
			}

			a.entryAdded(entry)
		case key.Matches(msg, a.keys.RemoveFav):
			if len(favorites) == 0 {
				return nil
			}

			a.tracker.RemoveFavorite(favorites[f.favCursor].ID)
			favorites = a.tracker.Favorites()
		}

		f.clampFavCursor(len(favorites))
	}

	return nil
}

func (a *App) submitDescription() tea.Cmd {
	f := &a.add

	if f.pending {
		return nil
	}

	desc := strings.TrimSpace(f.describe.Value())
	if desc == "" {
		f.err = msgDescribe
		return nil
	}

	f.err = ""
	f.pending = true

	a.logger.Debug("requesting estimate", slog.String("description", desc))

	return tea.Batch(f.spinner.Tick, estimateCmd(a.ctx, a.estimator, desc, a.nav.Selected()))
}

func (a *App) submitManual() tea.Cmd {
	f := &a.add

	draft, err := f.manualDraft()
	if err != nil {
		f.err = errorText(err)
		return nil
	}

	f.manual.reset()
	f.manual.focus = 0
	a.entryAdded(a.tracker.AddEntry(draft, a.nav.Selected()))

	return nil
}

// applyEstimate adds a finished AI estimate to the day it was requested for.
func (a *App) applyEstimate(msg estimateMsg) tea.Cmd {
	a.add.pending = false

	if msg.err != nil {
		a.logger.Warn("estimate failed",
			slog.String("description", msg.description),
			slog.String("error", msg.err.Error()),
		)

		a.add.err = estimateErrorText(msg.err)
		if a.screen != screenAdd {
			a.setStatus(a.add.err, true)
		}

		return nil
	}

	entry := a.tracker.AddEntry(msg.nutrition, msg.day)
	a.add.describe.Reset()

	if a.screen == screenAdd && a.add.mode == modeAI {
		a.entryAdded(entry)
		return nil
	}

	a.setStatus(fmt.Sprintf("Added %s (%s kcal)", entry.Name, FormatInt(entry.Calories)), false)

	return nil
}

func (a *App) entryAdded(e model.FoodEntry) {
	a.add.err = ""
	a.add.describe.Blur()
	a.add.manual.blur()
	a.screen = screenMain
	a.setStatus(fmt.Sprintf("Added %s (%s kcal)", e.Name, FormatInt(e.Calories)), false)
}

func (a *App) updateGoals(msg tea.KeyMsg) tea.Cmd {
	fs := &a.goals.fields

	switch msg.String() {
	case "esc":
		a.screen = screenMain
		return nil
	case "up", "shift+tab":
		return fs.focusOn(fs.focus-1, a.styles)
	case "down", "tab":
		return fs.focusOn(fs.focus+1, a.styles)
	case "enter":
		if !fs.last() {
			return fs.focusOn(fs.focus+1, a.styles)
		}

		goals, err := a.goals.parse()
		if err != nil {
			a.goals.err = errorText(err)
			return nil
		}

		a.tracker.SetGoals(goals)
		a.screen = screenMain
		a.setStatus("Goals saved", false)

		return nil
	}

	return fs.update(msg)
}

func (a *App) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		n, err := a.tracker.ClearDay(a.nav.Selected(), tracker.ConfirmFunc(func(string) bool { return true }))
		if err != nil {
			a.setStatus(errorText(err), true)
		} else {
			a.setStatus(fmt.Sprintf("Cleared %d entries", n), false)
		}

		a.cursor = 0
		a.screen = screenMain

	case key.Matches(msg, a.keys.Deny):
		a.screen = screenMain
	}

	return nil
}

func errorText(err error) string {
	var dup *tracker.DuplicateFavoriteError
	if errors.As(err, &dup) {
		return dup.Error() + "."
	}

	var fe *model.FieldError
	if errors.As(err, &fe) {
		switch {
		case errors.Is(fe, model.ErrRequired):
			return fmt.Sprintf("Please enter %s.", fe.Field)
		default:
			return fmt.Sprintf("Invalid %s: %v", fe.Field, fe.Err)
		}
	}

	return err.Error()
}

func (a *App) View() string {
	s := a.styles
	label := a.nav.Label()

	var b strings.Builder

	theme := "☾ dark"
	if a.tracker.Theme() == model.ThemeLight {
		theme = "☀ light"
	}

	b.WriteString(s.Title.Render("MacroMind") + "  " + s.Muted.Render(theme) + "\n\n")

	switch a.screen {
	case screenAdd:
		b.WriteString(a.add.view(s, label, a.tracker.Favorites()))
		return s.App.Render(b.String())
	case screenGoals:
		b.WriteString(a.goals.view(s))
		return s.App.Render(b.String())
	case screenConfirmClear:
		b.WriteString(s.Header.Render(a.prompt) + "\n\n")
		b.WriteString(s.Muted.Render(" y: yes • n: no"))

		return s.App.Render(b.String())
	}

	next := "▶"
	if a.nav.IsToday() {
		next = s.Muted.Render("▷")
	}

	fmt.Fprintf(&b, " ◀  %s  %s\n\n", s.Header.Render(label), next)

	selected := a.nav.Selected()
	b.WriteString(renderDashboard(s, a.bars, a.tracker.Summary(selected)))

	title := "Today's Meals"
	if !a.nav.IsToday() {
		title = label + "'s Meals"
	}

	b.WriteString(renderEntries(s, title, a.dayEntries(), a.cursor, a.tracker.Location()))
	b.WriteString(renderWeek(s, a.tracker.Week(), a.tracker.Goals().Calories, a.bars.width))

	if a.add.pending {
		b.WriteString("\n " + a.add.spinner.View() + s.Muted.Render(" Analyzing…"))
	}

	if a.status != "" {
		style := s.Success
		if a.statusErr {
			style = s.Error
		}

		b.WriteString("\n " + style.Render(a.status))
	}

	b.WriteString("\n\n" + a.help.View(a.keys))

	return s.App.Render(b.String())
}
