package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devpro-studio/intake/internal/core/intake"
	"github.com/devpro-studio/intake/pkg/tuitest"
)

func TestTextAreaField_ignoresInputWhenBlurred(t *testing.T) {
	f := NewTextAreaField("Project description", "", intake.Rule{Required: true})

	updated, _ := f.Update(tuitest.KeyPress('a'))

	assert.Empty(t, updated.Value())
}

func TestTextAreaField_multilineInput(t *testing.T) {
	f := NewTextAreaField("Project description", "", intake.Rule{Required: true})
	f.Focus()

	var field Field = f
	for _, msg := range tuitest.TypeString("line one") {
		field, _ = field.Update(msg)
	}
	field, _ = field.Update(tuitest.KeyEnter())
	for _, msg := range tuitest.TypeString("line two") {
		field, _ = field.Update(msg)
	}

	assert.Equal(t, "line one\nline two", field.Value())
}

func TestTextAreaField_requiredRule(t *testing.T) {
	f := NewTextAreaField("Project description", "", intake.Rule{Required: true})

	assert.Equal(t, intake.MsgRequired, f.Validate())

	f.SetValue("build a site")
	assert.Empty(t, f.Validate())
	assert.Empty(t, f.Err())
}
