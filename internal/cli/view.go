package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/macromind/internal/model"
	"github.com/inovacc/macromind/internal/nutrition"
)

type bars struct {
	calories progress.Model
	protein  progress.Model
	carbs    progress.Model
	fat      progress.Model
	width    int
}

func newBars(p palette, width int) bars {
	mk := func(c lipgloss.Color) progress.Model {
		return progress.New(
			progress.WithSolidFill(string(c)),
			progress.WithoutPercentage(),
			progress.WithWidth(width),
		)
	}

	return bars{
		calories: mk(p.calories),
		protein:  mk(p.protein),
		carbs:    mk(p.carbs),
		fat:      mk(p.fat),
		width:    width,
	}
}

func barWidth(termWidth int) int {
	if termWidth <= 0 {
		return 30
	}

	return min(40, max(10, termWidth-40))
}

func renderDashboard(s Styles, b bars, sum nutrition.Day) string {
	var out strings.Builder

	remaining := fmt.Sprintf("%s kcal left", FormatInt(sum.RemainingCalories))
	if sum.Totals.Calories > sum.Goals.Calories && sum.Goals.Calories > 0 {
		remaining = s.Over.Render(fmt.Sprintf("%s kcal over", FormatInt(sum.Totals.Calories-sum.Goals.Calories)))
	} else {
		remaining = s.Success.Render(remaining)
	}

	row := func(label string, bar progress.Model, pct nutrition.Percent, current, goal, unit string) {
		fmt.Fprintf(&out, " %-9s %s %s %s\n",
			s.Text.Render(label),
			bar.ViewAs(pct.Bar/100),
			s.Muted.Render(fmt.Sprintf("%s / %s%s", current, goal, unit)),
			s.Muted.Render(fmt.Sprintf("%d%%", pct.Label)),
		)
	}

	row("Calories", b.calories, sum.Calories, FormatInt(sum.Totals.Calories), FormatInt(sum.Goals.Calories), " kcal")
	out.WriteString("           " + remaining + "\n")
	row("Protein", b.protein, sum.Protein, FormatGrams(sum.Totals.Protein), FormatGrams(sum.Goals.Protein), "")
	row("Carbs", b.carbs, sum.Carbs, FormatGrams(sum.Totals.Carbs), FormatGrams(sum.Goals.Carbs), "")
	row("Fat", b.fat, sum.Fat, FormatGrams(sum.Totals.Fat), FormatGrams(sum.Goals.Fat), "")

	return out.String()
}

func renderEntries(s Styles, title string, entries []model.FoodEntry, cursor int, loc *time.Location) string {
	var out strings.Builder

	out.WriteString(s.Section.Render(fmt.Sprintf("%s (%d)", title, len(entries))) + "\n")

	if len(entries) == 0 {
		out.WriteString(s.Muted.Render(" Nothing logged yet. Press a to add food.") + "\n")
		return out.String()
	}

	for i, e := range entries {
		line := fmt.Sprintf("%s  %-22s %6s kcal  P %s · C %s · F %s",
			e.Time(loc).Format("15:04"),
			truncate(e.Name, 22),
			FormatInt(e.Calories),
			FormatGrams(e.Protein), FormatGrams(e.Carbs), FormatGrams(e.Fat),
		)

		if i == cursor {
			out.WriteString(s.Selected.Render("› "+line) + "\n")
		} else {
			out.WriteString(s.Text.Render("  "+line) + "\n")
		}
	}

	return out.String()
}

func renderWeek(s Styles, week []nutrition.WeekDay, goal float64, width int) string {
	var out strings.Builder

	out.WriteString(s.Section.Render("Last 7 days") + "\n")

	top := goal
	for _, d := range week {
		top = max(top, float64(d.Calories))
	}

	for _, d := range week {
		n := 0
		if top > 0 {
			n = int(float64(d.Calories) / top * float64(width))
		}

		bar := strings.Repeat("█", n)
		if d.IsOver {
			bar = s.Over.Render(bar)
		} else {
			bar = lipgloss.NewStyle().Foreground(s.Palette.calories).Render(bar)
		}

		label := fmt.Sprintf("%s %-6s", d.Day, d.Date)
		if d.IsToday {
			label = s.Selected.Render(label)
		} else {
			label = s.Muted.Render(label)
		}

		fmt.Fprintf(&out, " %s %s %s\n", label, bar, s.Muted.Render(FormatInt(float64(d.Calories))))
	}

	out.WriteString(s.Muted.Render(fmt.Sprintf(" goal %s kcal", FormatInt(goal))) + " " + s.Over.Render("■ over goal") + "\n")

	return out.String()
}
