package form

import (
	"path/filepath"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/devpro-studio/intake/internal/core/intake"
	"github.com/devpro-studio/intake/internal/core/styles"
)

// PlaceholderLabel is shown when no attachment has been chosen.
const PlaceholderLabel = "no file selected (optional)"

// AttachmentField lets the user point the form at an optional file. The
// field holds only the path; the file itself is read at submit time and no
// type or size checks happen here — the backend owns those limits.
type AttachmentField struct {
	input   textinput.Model
	label   string
	err     string
	focused bool
}

// NewAttachmentField creates a file path input with a selection label.
func NewAttachmentField(label string) *AttachmentField {
	ti := textinput.New()
	ti.Placeholder = "path/to/file.pdf"
	ti.Prompt = ""
	ti.SetWidth(40)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &AttachmentField{
		input: ti,
		label: label,
	}
}

// SelectionLabel mirrors the chosen file back to the user, or the
// placeholder text when the field is empty.
func (f *AttachmentField) SelectionLabel() string {
	if f.input.Value() == "" {
		return PlaceholderLabel
	}
	return "selected file: " + filepath.Base(f.input.Value())
}

func (f *AttachmentField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *AttachmentField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}

	selection := styles.TextMutedStyle.Render(styles.IconAttachment + " " + f.SelectionLabel())
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(f.label),
		f.input.View(),
		selection,
	)

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *AttachmentField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *AttachmentField) Blur() {
	f.focused = false
	f.input.Blur()
}

// Validate is a no-op: the attachment is optional and its contents are
// checked by the backend, not the form.
func (f *AttachmentField) Validate() string {
	f.err = intake.Rule{}.Validate(f.input.Value())
	return f.err
}

func (f *AttachmentField) Reset() {
	f.input.SetValue("")
	f.err = ""
}

func (f *AttachmentField) Focused() bool     { return f.focused }
func (f *AttachmentField) Value() string     { return f.input.Value() }
func (f *AttachmentField) SetValue(v string) { f.input.SetValue(v) }
func (f *AttachmentField) Label() string     { return f.label }
func (f *AttachmentField) Err() string       { return f.err }
