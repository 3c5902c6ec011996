package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devpro-studio/intake/pkg/tuitest"
)

func TestAttachmentField_selectionLabel(t *testing.T) {
	f := NewAttachmentField("Attachment")

	assert.Equal(t, PlaceholderLabel, f.SelectionLabel())

	f.SetValue("/tmp/docs/brief.pdf")
	assert.Equal(t, "selected file: brief.pdf", f.SelectionLabel())

	// Clearing the chooser reverts to the placeholder.
	f.SetValue("")
	assert.Equal(t, PlaceholderLabel, f.SelectionLabel())
}

func TestAttachmentField_resetRevertsLabel(t *testing.T) {
	f := NewAttachmentField("Attachment")
	f.SetValue("brief.pdf")

	f.Reset()

	assert.Equal(t, PlaceholderLabel, f.SelectionLabel())
	assert.Empty(t, f.Value())
}

func TestAttachmentField_optional(t *testing.T) {
	f := NewAttachmentField("Attachment")
	assert.Empty(t, f.Validate())
}

func TestAttachmentField_labelVisibleInView(t *testing.T) {
	f := NewAttachmentField("Attachment")
	f.SetValue("/tmp/brief.pdf")

	view := tuitest.StripANSI(f.View())
	assert.Contains(t, view, "selected file: brief.pdf")
}
