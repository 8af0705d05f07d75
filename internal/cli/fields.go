package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldSet is a vertical group of labelled text inputs with one focused.
type fieldSet struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newFieldSet(labels, placeholders []string) fieldSet {
	fs := fieldSet{
		labels: labels,
		inputs: make([]textinput.Model, len(labels)),
	}

	for i := range fs.inputs {
		t := textinput.New()
		t.CharLimit = 64
		t.Width = 24
		t.Prompt = "› "

		if i < len(placeholders) {
			t.Placeholder = placeholders[i]
		}

		fs.inputs[i] = t
	}

	return fs
}

func (fs *fieldSet) values() []string {
	out := make([]string, len(fs.inputs))
	for i, in := range fs.inputs {
		out[i] = in.Value()
	}

	return out
}

func (fs *fieldSet) setValues(values ...string) {
	for i := range fs.inputs {
		if i < len(values) {
			fs.inputs[i].SetValue(values[i])
			fs.inputs[i].CursorEnd()
		}
	}
}

func (fs *fieldSet) reset() {
	for i := range fs.inputs {
		fs.inputs[i].Reset()
	}
}

func (fs *fieldSet) last() bool {
	return fs.focus == len(fs.inputs)-1
}

// focusOn moves focus to index i, wrapping around.
func (fs *fieldSet) focusOn(i int, styles Styles) tea.Cmd {
	n := len(fs.inputs)
	fs.focus = ((i % n) + n) % n

	var cmd tea.Cmd

	for j := range fs.inputs {
		if j == fs.focus {
			cmd = fs.inputs[j].Focus()
			fs.inputs[j].PromptStyle = styles.Focused
			fs.inputs[j].TextStyle = styles.Focused

			continue
		}

		fs.inputs[j].Blur()
		fs.inputs[j].PromptStyle = styles.Blurred
		fs.inputs[j].TextStyle = styles.Text
	}

	return cmd
}

func (fs *fieldSet) blur() {
	for i := range fs.inputs {
		fs.inputs[i].Blur()
	}
}

func (fs *fieldSet) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(fs.inputs))

	// only the focused input reacts to keys
	for i := range fs.inputs {
		fs.inputs[i], cmds[i] = fs.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (fs *fieldSet) view(styles Styles) string {
	var b strings.Builder

	width := 0
	for _, l := range fs.labels {
		width = max(width, len(l))
	}

	for i, in := range fs.inputs {
		label := styles.Muted
		if i == fs.focus {
			label = styles.Focused
		}

		fmt.Fprintf(&b, " %s %s\n", label.Render(fmt.Sprintf("%-*s", width, fs.labels[i])), in.View())
	}

	return b.String()
}
