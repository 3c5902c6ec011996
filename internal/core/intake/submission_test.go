package intake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmission(t *testing.T) {
	t.Run("trims field values", func(t *testing.T) {
		sub, err := NewSubmission("  Alice ", " (11) 99999-8888 ", " alice@example.com ", " hi \n", "")
		require.NoError(t, err)
		assert.Equal(t, "Alice", sub.Name)
		assert.Equal(t, "(11) 99999-8888", sub.Whatsapp)
		assert.Equal(t, "alice@example.com", sub.Email)
		assert.Equal(t, "hi", sub.ProjectDescription)
		assert.Nil(t, sub.Attachment)
	})

	t.Run("loads attachment from path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "brief.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

		sub, err := NewSubmission("Alice", "(11) 99999-8888", "alice@example.com", "hi", path)
		require.NoError(t, err)
		require.NotNil(t, sub.Attachment)
		assert.Equal(t, "brief.pdf", sub.Attachment.Name)
		assert.Equal(t, []byte("%PDF-1.4"), sub.Attachment.Content)
		assert.Equal(t, "application/pdf", sub.Attachment.ContentType)
	})

	t.Run("missing attachment file errors", func(t *testing.T) {
		_, err := NewSubmission("Alice", "(11) 99999-8888", "alice@example.com", "hi", filepath.Join(t.TempDir(), "nope.pdf"))
		assert.Error(t, err)
	})
}

func TestLoadAttachment_unknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.weird123")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02}, 0o644))

	att, err := LoadAttachment(path)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", att.ContentType)
}
