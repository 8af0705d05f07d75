package cli

import (
	"strconv"
	"strings"

	"github.com/inovacc/macromind/internal/model"
)

type goalsForm struct {
	fields fieldSet
	err    string
}

func newGoalsForm(goals model.DailyGoals) goalsForm {
	fs := newFieldSet(
		[]string{"Calories (kcal)", "Protein (g)", "Carbs (g)", "Fat (g)"},
		[]string{"2000", "150", "200", "65"},
	)

	fs.setValues(
		formatGoal(goals.Calories),
		formatGoal(goals.Protein),
		formatGoal(goals.Carbs),
		formatGoal(goals.Fat),
	)

	return goalsForm{fields: fs}
}

func formatGoal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (g *goalsForm) parse() (model.DailyGoals, error) {
	v := g.fields.values()
	return model.ParseGoals(v[0], v[1], v[2], v[3])
}

func (g *goalsForm) view(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("Daily goals") + "\n\n")
	b.WriteString(g.fields.view(styles))

	if g.err != "" {
		b.WriteString("\n " + styles.Error.Render(g.err) + "\n")
	}

	b.WriteString("\n" + styles.Muted.Render(" ↑/↓: field • enter: next/save • esc: cancel"))

	return b.String()
}
