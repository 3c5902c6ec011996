// Package form provides the input field components of the contact form.
package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string // current raw value (a file path for the attachment field)
	SetValue(string)
	Label() string

	// Validate re-evaluates the field's rule against its current value,
	// repaints the error state either way, and returns the message ("" when
	// the field passes). Calling it repeatedly never accumulates stale state.
	Validate() string
	Err() string

	// Reset clears the value and any error state.
	Reset()
}
