package intake

import (
	"regexp"
	"strings"
)

// Format identifies the shape a field value must match once present.
type Format int

const (
	FormatNone Format = iota
	FormatEmail
	FormatPhoneNumber
)

// Validation messages surfaced inline next to a field.
const (
	MsgRequired     = "this field is required"
	MsgInvalidEmail = "enter a valid email"
	MsgInvalidPhone = "enter a valid number, e.g. (11) 99999-8888"
)

var (
	// Mirrors the backend's email check: a local part, an @, and a domain
	// with at least one dot.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// The canonical display mask, landline or mobile grouping.
	phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
)

// Rule declares the required-ness and format constraint of a single field.
type Rule struct {
	Required bool
	Format   Format
}

// Validate checks value against the rule and returns an empty string when it
// passes, or the user-facing message when it fails. A missing required value
// short-circuits the format check.
func (r Rule) Validate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if r.Required {
			return MsgRequired
		}
		return ""
	}

	switch r.Format {
	case FormatEmail:
		if !emailPattern.MatchString(trimmed) {
			return MsgInvalidEmail
		}
	case FormatPhoneNumber:
		if !phonePattern.MatchString(trimmed) {
			return MsgInvalidPhone
		}
	}
	return ""
}

// FieldSpec pairs a wire field name with its display label and rule.
type FieldSpec struct {
	Name  string
	Label string
	Rule  Rule
}

// FieldSpecs returns the fixed, ordered set of required form fields. The
// order is the order fields are validated and displayed in.
func FieldSpecs() []FieldSpec {
	return []FieldSpec{
		{Name: "name", Label: "Name", Rule: Rule{Required: true}},
		{Name: "whatsapp", Label: "WhatsApp", Rule: Rule{Required: true, Format: FormatPhoneNumber}},
		{Name: "email", Label: "Email", Rule: Rule{Required: true, Format: FormatEmail}},
		{Name: "project_description", Label: "Project description", Rule: Rule{Required: true}},
	}
}
