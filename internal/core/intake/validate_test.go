package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Validate(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		value string
		want  string
	}{
		{"optional empty", Rule{}, "", ""},
		{"required empty", Rule{Required: true}, "", MsgRequired},
		{"required whitespace only", Rule{Required: true}, "   ", MsgRequired},
		{"required present", Rule{Required: true}, "Alice", ""},
		{"optional format skipped when empty", Rule{Format: FormatEmail}, "", ""},

		{"email valid", Rule{Required: true, Format: FormatEmail}, "user@example.com", ""},
		{"email double at", Rule{Required: true, Format: FormatEmail}, "user@@x", MsgInvalidEmail},
		{"email no dot", Rule{Required: true, Format: FormatEmail}, "user@x", MsgInvalidEmail},
		{"email trailing dot", Rule{Required: true, Format: FormatEmail}, "user@x.", MsgInvalidEmail},
		{"email surrounding space trimmed", Rule{Required: true, Format: FormatEmail}, " user@example.com ", ""},

		{"phone mobile mask", Rule{Required: true, Format: FormatPhoneNumber}, "(11) 99999-8888", ""},
		{"phone landline mask", Rule{Required: true, Format: FormatPhoneNumber}, "(11) 9999-8888", ""},
		{"phone bare digits", Rule{Required: true, Format: FormatPhoneNumber}, "11999998888", MsgInvalidPhone},
		{"phone missing space", Rule{Required: true, Format: FormatPhoneNumber}, "(11)99999-8888", MsgInvalidPhone},
		{"phone missing dash", Rule{Required: true, Format: FormatPhoneNumber}, "(11) 999998888", MsgInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Validate(tt.value))
		})
	}
}

func TestSubmission_Validate(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		sub := Submission{
			Name:               "Alice",
			Whatsapp:           "(11) 99999-8888",
			Email:              "alice@example.com",
			ProjectDescription: "a landing page",
		}
		assert.Empty(t, sub.Validate())
	})

	t.Run("all fields missing", func(t *testing.T) {
		errs := Submission{}.Validate()
		require.Len(t, errs, 4)
		// Errors come back in the fixed field order.
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "whatsapp", errs[1].Field)
		assert.Equal(t, "email", errs[2].Field)
		assert.Equal(t, "project_description", errs[3].Field)
		for _, e := range errs {
			assert.Equal(t, MsgRequired, e.Message)
		}
	})

	t.Run("format errors reported per field", func(t *testing.T) {
		sub := Submission{
			Name:               "Alice",
			Whatsapp:           "11999998888",
			Email:              "not-an-email",
			ProjectDescription: "something",
		}
		errs := sub.Validate()
		require.Len(t, errs, 2)
		assert.Equal(t, FieldError{Field: "whatsapp", Message: MsgInvalidPhone}, errs[0])
		assert.Equal(t, FieldError{Field: "email", Message: MsgInvalidEmail}, errs[1])
	})
}
