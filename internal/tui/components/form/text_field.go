package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/devpro-studio/intake/internal/core/intake"
	"github.com/devpro-studio/intake/internal/core/styles"
)

// TextField is a single-line text input form field with an optional display
// formatter and validation rule.
type TextField struct {
	input     textinput.Model
	label     string
	rule      intake.Rule
	formatter func(string) string
	err       string
	focused   bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder, defaultVal string, rule intake.Rule) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(40)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		input: ti,
		label: label,
		rule:  rule,
	}
}

// WithFormatter sets a display formatter applied to the value after every
// keystroke. The formatter must be idempotent over its own output.
func (f *TextField) WithFormatter(fn func(string) string) *TextField {
	f.formatter = fn
	if fn != nil {
		f.input.SetValue(fn(f.input.Value()))
	}
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if f.formatter != nil {
		formatted := f.formatter(f.input.Value())
		if formatted != f.input.Value() {
			f.input.SetValue(formatted)
			f.input.CursorEnd()
		}
	}

	return f, cmd
}

func (f *TextField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}

	parts := []string{titleStyle.Render(f.label), f.input.View()}
	if f.err != "" {
		parts = append(parts, styles.FormErrorStyle.Render(f.err))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	switch {
	case f.err != "":
		borderStyle = styles.FormFieldErrorStyle
	case f.focused:
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// Validate repaints the error state from the current value.
func (f *TextField) Validate() string {
	f.err = f.rule.Validate(f.input.Value())
	return f.err
}

func (f *TextField) Reset() {
	f.input.SetValue("")
	f.err = ""
}

func (f *TextField) Focused() bool     { return f.focused }
func (f *TextField) Value() string     { return f.input.Value() }
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }
func (f *TextField) Label() string     { return f.label }
func (f *TextField) Err() string       { return f.err }
