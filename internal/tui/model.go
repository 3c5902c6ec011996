// Package tui implements the interactive contact form.
package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/devpro-studio/intake/internal/core/backend"
	"github.com/devpro-studio/intake/internal/core/config"
	"github.com/devpro-studio/intake/internal/core/intake"
	"github.com/devpro-studio/intake/internal/core/notify"
	"github.com/devpro-studio/intake/internal/core/styles"
	"github.com/devpro-studio/intake/internal/tui/components/form"
)

// Submitter sends a finished submission to the backend.
type Submitter interface {
	Submit(ctx context.Context, sub intake.Submission) (backend.Outcome, error)
}

// UIState represents the current state of the form.
type UIState int

const (
	// stateForm: the form is editable and the submit action enabled.
	stateForm UIState = iota
	// stateSubmitting: exactly one request is in flight; input is ignored
	// until the result lands.
	stateSubmitting
)

// User-facing fallbacks when the backend gives no message of its own.
const (
	defaultSuccessMsg = "message sent! we will be in touch soon"
	genericFailureMsg = "could not send your message, please try again"
)

// Deps carries the collaborators the form needs.
type Deps struct {
	Config *config.Config
	Client Submitter
}

// submitResultMsg delivers the outcome of an async submission back into the
// update loop. Exactly one is produced per submit attempt.
type submitResultMsg struct {
	outcome backend.Outcome
	err     error
}

// formSnapshot freezes the field values at submit time so the payload is
// built from what the user saw when they pressed send.
type formSnapshot struct {
	name        string
	whatsapp    string
	email       string
	description string
	attachment  string
}

// Model is the contact form TUI.
type Model struct {
	cfg    *config.Config
	client Submitter

	// fields in validation and focus order; the attachment field is last.
	fields     []form.Field
	attachment *form.AttachmentField
	focused    int

	state   UIState
	spinner spinner.Model

	toastController *ToastController
	toastView       *ToastView

	width    int
	height   int
	quitting bool
}

// New constructs the form with prefill values from config and focus on the
// first field.
func New(deps Deps) Model {
	specs := intake.FieldSpecs()

	name := form.NewTextField(specs[0].Label, "how should we call you?", deps.Config.Prefill.Name, specs[0].Rule)
	whatsapp := form.NewTextField(specs[1].Label, "(11) 99999-8888", deps.Config.Prefill.Whatsapp, specs[1].Rule).
		WithFormatter(intake.FormatPhone)
	email := form.NewTextField(specs[2].Label, "you@example.com", deps.Config.Prefill.Email, specs[2].Rule)
	description := form.NewTextAreaField(specs[3].Label, "tell us about the project", specs[3].Rule)
	attachment := form.NewAttachmentField("Attachment")

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	toastCtrl := NewToastController()

	m := Model{
		cfg:             deps.Config,
		client:          deps.Client,
		fields:          []form.Field{name, whatsapp, email, description, attachment},
		attachment:      attachment,
		spinner:         s,
		toastController: toastCtrl,
		toastView:       NewToastView(toastCtrl),
	}
	m.fields[0].Focus()
	return m
}

// Init starts the cursor blink on the focused field.
func (m Model) Init() tea.Cmd {
	return m.fields[m.focused].Focus()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case spinner.TickMsg:
		if m.state != stateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case toastTickMsg:
		return m.handleToastTick(msg)
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m.updateFocusedField(msg)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// While a request is in flight the whole form is disabled.
	if m.state == stateSubmitting {
		return m, nil
	}

	switch key {
	case "esc":
		if m.toastController.Active() {
			m.toastController.Dismiss()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.advanceFocus()
	case "shift+tab":
		return m.retreatFocus()
	case "enter":
		if m.isTextAreaFocused() {
			// Let the textarea insert a newline.
			return m.updateFocusedField(msg)
		}
		if m.focused == len(m.fields)-1 {
			return m.submit()
		}
		return m.advanceFocus()
	case "ctrl+s":
		return m.submit()
	}

	return m.updateFocusedField(msg)
}

// submit runs the validation engine and, when the form passes, transitions
// into stateSubmitting with exactly one request command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	// Guard against a second submit racing the first; the in-flight request
	// wins and no second payload is built.
	if m.state == stateSubmitting {
		return m, nil
	}

	if !m.validateForm() {
		log.Debug().Msg("submission blocked by field validation")
		return m, nil
	}

	m.state = stateSubmitting
	return m, tea.Batch(m.spinner.Tick, m.submitCmd(m.snapshot()))
}

// validateForm runs every field's rule in order and repaints each field's
// error state whether it passed or failed. Returns true when the whole form
// is submittable.
func (m Model) validateForm() bool {
	ok := true
	for _, f := range m.fields {
		if msg := f.Validate(); msg != "" {
			ok = false
		}
	}
	return ok
}

func (m Model) snapshot() formSnapshot {
	return formSnapshot{
		name:        m.fields[0].Value(),
		whatsapp:    m.fields[1].Value(),
		email:       m.fields[2].Value(),
		description: m.fields[3].Value(),
		attachment:  m.attachment.Value(),
	}
}

// submitCmd builds the payload and performs the request off the update loop.
func (m Model) submitCmd(snap formSnapshot) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		sub, err := intake.NewSubmission(snap.name, snap.whatsapp, snap.email, snap.description, snap.attachment)
		if err != nil {
			return submitResultMsg{err: err}
		}

		outcome, err := client.Submit(context.Background(), sub)
		return submitResultMsg{outcome: outcome, err: err}
	}
}

func (m Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	// Re-enable the form before anything else; no branch below may leave it
	// disabled.
	m.state = stateForm

	switch {
	case msg.err != nil:
		log.Error().Err(msg.err).Msg("submission failed")
		m.toastController.Show(notify.Error(genericFailureMsg))
	case msg.outcome.Success():
		message := msg.outcome.Message()
		if message == "" {
			message = defaultSuccessMsg
		}
		log.Info().Msg("submission accepted")
		m.toastController.Show(notify.Success(message))
		m.clearForm()
	default:
		reason := msg.outcome.Reason()
		if reason == "" {
			reason = genericFailureMsg
		}
		log.Warn().Str("reason", msg.outcome.Reason()).Msg("submission rejected")
		m.toastController.Show(notify.Error(reason))
	}

	if m.toastController.Ticking() {
		return m, nil
	}
	m.toastController.SetTicking(true)
	return m, scheduleToastTick()
}

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.Active() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

// clearForm wipes every field (attachment label included) and returns focus
// to the first field. Only called after a successful submission.
func (m *Model) clearForm() {
	for _, f := range m.fields {
		f.Reset()
	}
	m.fields[m.focused].Blur()
	m.focused = 0
	m.fields[0].Focus()
}

func (m Model) advanceFocus() (tea.Model, tea.Cmd) {
	return m.focusField((m.focused + 1) % len(m.fields))
}

func (m Model) retreatFocus() (tea.Model, tea.Cmd) {
	return m.focusField((m.focused - 1 + len(m.fields)) % len(m.fields))
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.fields[m.focused].Blur()
	m.focused = i
	return m, m.fields[i].Focus()
}

func (m Model) isTextAreaFocused() bool {
	_, ok := m.fields[m.focused].(*form.TextAreaField)
	return ok && m.fields[m.focused].Focused()
}

func (m Model) updateFocusedField(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.fields[m.focused], cmd = m.fields[m.focused].Update(msg)
	return m, cmd
}

// View renders the form with the toast composited on top.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	parts := []string{
		styles.AppTitleStyle.Render("New project inquiry"),
		"",
	}
	for _, f := range m.fields {
		parts = append(parts, f.View())
	}
	parts = append(parts, "")

	if m.state == stateSubmitting {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, m.spinner.View(), " sending..."))
	} else {
		parts = append(parts, styles.FormHelpStyle.Render("tab: next field • ctrl+s: send • esc: quit"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	if m.toastController.Active() {
		content = m.toastView.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}
