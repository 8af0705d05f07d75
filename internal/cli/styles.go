package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/macromind/internal/model"
)

type palette struct {
	text     lipgloss.Color
	muted    lipgloss.Color
	subtle   lipgloss.Color
	accent   lipgloss.Color
	calories lipgloss.Color
	protein  lipgloss.Color
	carbs    lipgloss.Color
	fat      lipgloss.Color
	danger   lipgloss.Color
	success  lipgloss.Color
}

var (
	darkPalette = palette{
		text:     lipgloss.Color("#E2E8F0"),
		muted:    lipgloss.Color("#94A3B8"),
		subtle:   lipgloss.Color("#334155"),
		accent:   lipgloss.Color("#60A5FA"),
		calories: lipgloss.Color("#3B82F6"),
		protein:  lipgloss.Color("#10B981"),
		carbs:    lipgloss.Color("#F59E0B"),
		fat:      lipgloss.Color("#F43F5E"),
		danger:   lipgloss.Color("#F87171"),
		success:  lipgloss.Color("#34D399"),
	}

	lightPalette = palette{
		text:     lipgloss.Color("#0F172A"),
		muted:    lipgloss.Color("#64748B"),
		subtle:   lipgloss.Color("#E2E8F0"),
		accent:   lipgloss.Color("#2563EB"),
		calories: lipgloss.Color("#2563EB"),
		protein:  lipgloss.Color("#059669"),
		carbs:    lipgloss.Color("#D97706"),
		fat:      lipgloss.Color("#E11D48"),
		danger:   lipgloss.Color("#DC2626"),
		success:  lipgloss.Color("#059669"),
	}
)

// Styles holds every lipgloss style the UI renders with.
type Styles struct {
	Palette palette

	App      lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style
	Section  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Over     lipgloss.Style
	Box      lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme model.Theme) Styles {
	p := darkPalette
	if theme == model.ThemeLight {
		p = lightPalette
	}

	return Styles{
		Palette:  p,
		App:      lipgloss.NewStyle().Margin(1, 2),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(p.text).MarginTop(1),
		Text:     lipgloss.NewStyle().Foreground(p.text),
		Muted:    lipgloss.NewStyle().Foreground(p.muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Error:    lipgloss.NewStyle().Foreground(p.danger),
		Success:  lipgloss.NewStyle().Foreground(p.success),
		Over:     lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.subtle).
			Padding(0, 1),
		Tab:     lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		TabOn:   lipgloss.NewStyle().Bold(true).Foreground(p.accent).Underline(true).Padding(0, 1),
		Focused: lipgloss.NewStyle().Foreground(p.accent),
		Blurred: lipgloss.NewStyle().Foreground(p.muted),
	}
}
