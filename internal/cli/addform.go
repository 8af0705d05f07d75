package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/macromind/internal/estimator"
	"github.com/inovacc/macromind/internal/model"
)

const (
	msgAnalyzeFailed = "Could not analyze food. Please try again or use manual mode."
	msgAINotReady    = "AI estimation is not configured. Set an API key or use manual mode."
	msgDescribe      = "Describe what you ate, e.g. \"2 scrambled eggs and toast\"."
)

type addMode int

const (
	modeAI addMode = iota
	modeManual
	modeFavorites
)

var addModeNames = [...]string{"AI", "Manual", "Favorites"}

func (m addMode) String() string {
	return addModeNames[m]
}

// estimateMsg carries an AI result back to the update loop. day is the day
// that was selected when the request was issued.
type estimateMsg struct {
	day         time.Time
	description string
	nutrition   model.Nutrition
	err         error
}

func estimateCmd(ctx context.Context, est estimator.Estimator, description string, day time.Time) tea.Cmd {
	return func() tea.Msg {
		n, err := est.Estimate(ctx, description)

		return estimateMsg{day: day, description: description, nutrition: n, err: err}
	}
}

func estimateErrorText(err error) string {
	switch {
	case errors.Is(err, estimator.ErrNotConfigured):
		return msgAINotReady
	case errors.Is(err, estimator.ErrEmptyDescription):
		return msgDescribe
	default:
		return msgAnalyzeFailed
	}
}

type addForm struct {
	mode      addMode
	describe  textinput.Model
	manual    fieldSet
	favCursor int
	spinner   spinner.Model
	pending   bool
	err       string
}

func newAddForm() addForm {
	describe := textinput.New()
	describe.Placeholder = "e.g. a bowl of oatmeal with blueberries"
	describe.CharLimit = 200
	describe.Width = 48
	describe.Prompt = "› "

	s := spinner.New()
	s.Spinner = spinner.Dot

	return addForm{
		describe: describe,
		manual: newFieldSet(
			[]string{"Name", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)"},
			[]string{"Food name", "kcal", "0", "0", "0"},
		),
		spinner: s,
	}
}

// open focuses the input of the current mode.
func (f *addForm) open(styles Styles) tea.Cmd {
	f.err = ""
	f.spinner.Style = styles.Focused

	return f.setMode(f.mode, styles)
}

func (f *addForm) setMode(mode addMode, styles Styles) tea.Cmd {
	n := addMode(len(addModeNames))
	f.mode = ((mode % n) + n) % n
	f.err = ""

	f.describe.Blur()
	f.manual.blur()

	switch f.mode {
	case modeAI:
		return f.describe.Focus()
	case modeManual:
		return f.manual.focusOn(f.manual.focus, styles)
	default:
		return nil
	}
}

// manualDraft validates the manual fields.
func (f *addForm) manualDraft() (model.Nutrition, error) {
	v := f.manual.values()
	return model.ParseManualInput(v[0], v[1], v[2], v[3], v[4])
}

func (f *addForm) clampFavCursor(n int) {
	if f.favCursor >= n {
		f.favCursor = n - 1
	}

	if f.favCursor < 0 {
		f.favCursor = 0
	}
}

func (f *addForm) view(styles Styles, dayLabel string, favorites []model.SavedFood) string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("Add food") + " " + styles.Muted.Render("to "+dayLabel) + "\n\n")

	tabs := make([]string, 0, len(addModeNames))
	for i, name := range addModeNames {
		if addMode(i) == f.mode {
			tabs = append(tabs, styles.TabOn.Render(name))
		} else {
			tabs = append(tabs, styles.Tab.Render(name))
		}
	}

	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	switch f.mode {
	case modeAI:
		b.WriteString(styles.Muted.Render(" Describe your meal and the AI estimates its nutrition.") + "\n\n")
		b.WriteString(" " + f.describe.View() + "\n")

		if f.pending {
			b.WriteString("\n " + f.spinner.View() + styles.Muted.Render(" Analyzing…") + "\n")
		}

	case modeManual:
		b.WriteString(f.manual.view(styles))

	case modeFavorites:
		if len(favorites) == 0 {
			b.WriteString(styles.Muted.Render(" No favorites yet. Press f on a logged meal to save it.") + "\n")
		}

		for i, fav := range favorites {
			line := fmt.Sprintf("%-24s %6s kcal  P %s · C %s · F %s",
				truncate(fav.Name, 24), FormatInt(fav.Calories),
				FormatGrams(fav.Protein), FormatGrams(fav.Carbs), FormatGrams(fav.Fat))

			if i == f.favCursor {
				b.WriteString(styles.Selected.Render("› "+line) + "\n")
			} else {
				b.WriteString(styles.Text.Render("  "+line) + "\n")
			}
		}
	}

	if f.err != "" {
		b.WriteString("\n " + styles.Error.Render(f.err) + "\n")
	}

	var hint string

	switch f.mode {
	case modeAI:
		hint = "enter: analyze • tab: switch mode • esc: back"
	case modeManual:
		hint = "↑/↓: field • enter: next/add • tab: switch mode • esc: back"
	case modeFavorites:
		hint = "↑/↓: select • enter: add • x: remove • tab: switch mode • esc: back"
	}

	b.WriteString("\n" + styles.Muted.Render(" "+hint))

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
