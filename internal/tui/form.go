package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label  string
	secret bool
	limit  int
}

// form is a column of labelled text inputs with tab focus cycling.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = strings.ToLower(field.label)
		input.Width = 40
		if field.limit > 0 {
			input.CharLimit = field.limit
		}
		if field.secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '*'
		}
		f.labels[i] = field.label
		f.inputs[i] = input
	}
	f.inputs[0].Focus()

	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view(button string, submitting bool, errMsg string) string {
	width := 0
	for _, label := range f.labels {
		width = max(width, len(label))
	}

	var b strings.Builder
	for i, input := range f.inputs {
		b.WriteString(label(f.labels[i], width))
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if submitting {
		b.WriteString("\n[" + button + "...]\n")
	} else {
		b.WriteString("\n[" + button + "]\n")
	}

	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func label(s string, width int) string {
	return s + strings.Repeat(" ", width-len(s))
}
