package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpro-studio/intake/internal/core/intake"
	"github.com/devpro-studio/intake/pkg/tuitest"
)

func TestTextField_ignoresInputWhenBlurred(t *testing.T) {
	f := NewTextField("Name", "", "", intake.Rule{Required: true})

	updated, _ := f.Update(tuitest.KeyPress('a'))

	assert.Empty(t, updated.Value())
}

func TestTextField_acceptsInputWhenFocused(t *testing.T) {
	f := NewTextField("Name", "", "", intake.Rule{Required: true})
	f.Focus()

	var field Field = f
	for _, msg := range tuitest.TypeString("Alice") {
		field, _ = field.Update(msg)
	}

	assert.Equal(t, "Alice", field.Value())
}

func TestTextField_formatterMasksPhoneInput(t *testing.T) {
	f := NewTextField("WhatsApp", "", "", intake.Rule{Required: true, Format: intake.FormatPhoneNumber}).
		WithFormatter(intake.FormatPhone)
	f.Focus()

	var field Field = f
	for _, msg := range tuitest.TypeString("11999998888") {
		field, _ = field.Update(msg)
	}

	assert.Equal(t, "(11) 99999-8888", field.Value())
	assert.Empty(t, field.Validate())
}

func TestTextField_formatterAppliedToDefault(t *testing.T) {
	f := NewTextField("WhatsApp", "", "11999998888", intake.Rule{Format: intake.FormatPhoneNumber}).
		WithFormatter(intake.FormatPhone)

	assert.Equal(t, "(11) 99999-8888", f.Value())
}

func TestTextField_validateRepaintsErrorState(t *testing.T) {
	f := NewTextField("Email", "", "", intake.Rule{Required: true, Format: intake.FormatEmail})

	// Empty: required error.
	assert.Equal(t, intake.MsgRequired, f.Validate())
	assert.Equal(t, intake.MsgRequired, f.Err())

	// Bad format: error replaced, not accumulated.
	f.SetValue("user@@x")
	assert.Equal(t, intake.MsgInvalidEmail, f.Validate())

	// Valid: error cleared.
	f.SetValue("user@example.com")
	assert.Empty(t, f.Validate())
	assert.Empty(t, f.Err())
}

func TestTextField_errorShownInView(t *testing.T) {
	f := NewTextField("Name", "", "", intake.Rule{Required: true})
	f.Validate()

	view := tuitest.StripANSI(f.View())
	assert.Contains(t, view, intake.MsgRequired)

	f.SetValue("Alice")
	f.Validate()
	assert.NotContains(t, tuitest.StripANSI(f.View()), intake.MsgRequired)
}

func TestTextField_reset(t *testing.T) {
	f := NewTextField("Name", "", "", intake.Rule{Required: true})
	require.Equal(t, intake.MsgRequired, f.Validate())

	f.SetValue("Alice")
	f.Reset()

	assert.Empty(t, f.Value())
	assert.Empty(t, f.Err())
}
