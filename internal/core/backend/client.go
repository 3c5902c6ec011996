// Package backend is the HTTP client for the landing-page contact endpoint.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devpro-studio/intake/internal/core/intake"
)

// Client submits contact entries to the backend endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a client for the given endpoint URL. Timeout bounds the whole
// request including body upload.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// submissionResponse is the backend's loose response shape. Success replies
// carry "message", failure replies carry "error".
type submissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Submit sends one submission as multipart/form-data and converts the reply
// into a tagged Outcome. A transport-level failure returns an error; a
// non-2xx status or an undecodable body is reported as a reasonless failure.
func (c *Client) Submit(ctx context.Context, sub intake.Submission) (Outcome, error) {
	body, contentType, err := encodeMultipart(sub)
	if err != nil {
		return Outcome{}, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return Outcome{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	// The backend only answers JSON to requests it recognizes as XHR.
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := c.http.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("submit contact: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Msg("backend rejected submission")
		return FailureOutcome(""), nil
	}

	var decoded submissionResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		log.Warn().Err(err).Msg("backend response was not valid JSON")
		return FailureOutcome(""), nil
	}

	if !decoded.Success {
		return FailureOutcome(decoded.Error), nil
	}

	log.Debug().Str("email", sub.Email).Msg("submission accepted")
	return SuccessOutcome(decoded.Message), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart renders the submission as a multipart/form-data body with
// the backend's expected field names and an optional attachment part.
func encodeMultipart(sub intake.Submission) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":                sub.Name,
		"whatsapp":            sub.Whatsapp,
		"email":               sub.Email,
		"project_description": sub.ProjectDescription,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if att := sub.Attachment; att != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(
			`form-data; name="attachment"; filename="%s"`, quoteEscaper.Replace(att.Name)))
		header.Set("Content-Type", att.ContentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create attachment part: %w", err)
		}
		if _, err := part.Write(att.Content); err != nil {
			return nil, "", fmt.Errorf("write attachment: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
