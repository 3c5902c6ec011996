package intake

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// Attachment is an optional file included with a submission. Content is held
// in memory; the backend enforces size and type limits.
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
}

// Submission carries one contact form entry. It is built once per submit
// attempt, after validation, and not mutated afterwards.
type Submission struct {
	Name               string
	Whatsapp           string
	Email              string
	ProjectDescription string
	Attachment         *Attachment
}

// FieldError reports a per-field validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// NewSubmission trims the field values and, when path is non-empty, loads the
// attachment from disk.
func NewSubmission(name, whatsapp, email, description, path string) (Submission, error) {
	sub := Submission{
		Name:               strings.TrimSpace(name),
		Whatsapp:           strings.TrimSpace(whatsapp),
		Email:              strings.TrimSpace(email),
		ProjectDescription: strings.TrimSpace(description),
	}

	if path != "" {
		att, err := LoadAttachment(path)
		if err != nil {
			return Submission{}, err
		}
		sub.Attachment = att
	}

	return sub, nil
}

// Validate runs every field rule in declaration order and returns one
// FieldError per failing field. A nil result means the submission may be sent.
func (s Submission) Validate() []FieldError {
	values := map[string]string{
		"name":                s.Name,
		"whatsapp":            s.Whatsapp,
		"email":               s.Email,
		"project_description": s.ProjectDescription,
	}

	var errs []FieldError
	for _, spec := range FieldSpecs() {
		if msg := spec.Rule.Validate(values[spec.Name]); msg != "" {
			errs = append(errs, FieldError{Field: spec.Name, Message: msg})
		}
	}
	return errs
}

// LoadAttachment reads the file at path into an Attachment. The content type
// is derived from the file extension, falling back to octet-stream.
func LoadAttachment(path string) (*Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &Attachment{
		Name:        filepath.Base(path),
		Content:     content,
		ContentType: contentType,
	}, nil
}
