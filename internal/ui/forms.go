package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field is one labelled text input inside a form.
type Field struct {
	Label string
	input textinput.Model
}

func newField(label, value string) Field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	return Field{Label: label, input: ti}
}

func newSecretField(label string) Field {
	f := newField(label, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

// View renders the field's current input line.
func (f *Field) View() string { return f.input.View() }

// Form is an ordered set of fields with a single focused input. Tab order
// wraps in both directions.
type Form struct {
	Title  string
	action modalAction
	fields []Field
	focus  int
}

func newForm(title string, action modalAction, fields ...Field) *Form {
	form := &Form{Title: title, action: action, fields: fields}
	form.Focus(0)
	return form
}

func newLoginForm(baseURL string) *Form {
	return newForm("Connect to TasksGodzilla", actionNone,
		newField("API base", baseURL),
		newSecretField("API token (optional)"),
		newSecretField("Project token (optional)"),
	)
}

// Fields exposes the field list for rendering.
func (f *Form) Fields() []Field { return f.fields }

// FocusIndex returns the index of the focused field.
func (f *Form) FocusIndex() int { return f.focus }

// Focus moves the input focus to field i.
func (f *Form) Focus(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i > len(f.fields)-1 {
		i = len(f.fields) - 1
	}
	var cmd tea.Cmd
	for idx := range f.fields {
		if idx == i {
			cmd = f.fields[idx].input.Focus()
			continue
		}
		f.fields[idx].input.Blur()
	}
	f.focus = i
	return cmd
}

// Refocus re-applies focus to the current field.
func (f *Form) Refocus() tea.Cmd { return f.Focus(f.focus) }

// FocusNext advances the focus, wrapping after the last field.
func (f *Form) FocusNext() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.Focus((f.focus + 1) % len(f.fields))
}

// FocusPrev moves the focus back, wrapping before the first field.
func (f *Form) FocusPrev() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.Focus((f.focus + len(f.fields) - 1) % len(f.fields))
}

// HandleKey feeds a key into the focused field's input.
func (f *Form) HandleKey(key tea.KeyMsg) {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return
	}
	f.fields[f.focus].input, _ = f.fields[f.focus].input.Update(key)
}

// Value returns the trimmed content of field i.
func (f *Form) Value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return strings.TrimSpace(f.fields[i].input.Value())
}
