package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/devpro-studio/intake/internal/core/backend"
	"github.com/devpro-studio/intake/internal/core/intake"
	"github.com/devpro-studio/intake/internal/core/styles"
)

type SendCmd struct {
	flags *Flags

	name        string
	whatsapp    string
	email       string
	description string
	attach      string
	preview     bool
	yes         bool
}

func NewSendCmd(flags *Flags) *SendCmd {
	return &SendCmd{flags: flags}
}

func (cmd *SendCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "send",
		Usage:     "Send a contact submission without the interactive form",
		UsageText: "intake send --name NAME --whatsapp PHONE --email EMAIL --description TEXT [options]",
		Description: `Builds and sends a submission from flags, for scripted use.

Pass --description - to read the project description from stdin.
Use --attach with a glob pattern (doublestar syntax, e.g. 'docs/**/*.pdf')
to include a file; the pattern must match exactly one file.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "sender name",
				Destination: &cmd.name,
			},
			&cli.StringFlag{
				Name:        "whatsapp",
				Usage:       "whatsapp number (digits are fine; the mask is applied)",
				Destination: &cmd.whatsapp,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "contact email",
				Destination: &cmd.email,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "project description (use - to read from stdin)",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "attach",
				Usage:       "glob pattern matching exactly one file to attach",
				Destination: &cmd.attach,
			},
			&cli.BoolFlag{
				Name:        "preview",
				Usage:       "render the submission as markdown before sending",
				Destination: &cmd.preview,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "send without confirmation",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *SendCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer

	description, err := cmd.resolveDescription()
	if err != nil {
		return err
	}

	attachPath, err := cmd.resolveAttachment()
	if err != nil {
		return err
	}

	sub, err := intake.NewSubmission(
		cmd.name,
		intake.FormatPhone(cmd.whatsapp),
		cmd.email,
		description,
		attachPath,
	)
	if err != nil {
		return fmt.Errorf("build submission: %w", err)
	}

	if errs := sub.Validate(); len(errs) > 0 {
		for _, fieldErr := range errs {
			fmt.Fprintln(os.Stderr, styles.TextErrorStyle.Render(fieldErr.Error()))
		}
		return fmt.Errorf("submission failed validation")
	}

	if cmd.preview {
		if err := cmd.renderPreview(w, sub); err != nil {
			return err
		}
	}

	if !cmd.yes {
		var send bool
		err := huh.NewConfirm().
			Title("Send this submission?").
			Description("Recipient: " + cmd.flags.Config.Endpoint).
			Value(&send).
			Run()
		if err != nil {
			return err
		}
		if !send {
			fmt.Fprintln(w, styles.TextMutedStyle.Render("send cancelled"))
			return nil
		}
	}

	client := backend.New(cmd.flags.Config.Endpoint, cmd.flags.Config.Timeout())
	outcome, err := client.Submit(ctx, sub)
	if err != nil {
		return fmt.Errorf("send submission: %w", err)
	}

	if !outcome.Success() {
		reason := outcome.Reason()
		if reason == "" {
			reason = "the server rejected the submission"
		}
		return fmt.Errorf("submission rejected: %s", reason)
	}

	log.Info().Str("endpoint", cmd.flags.Config.Endpoint).Msg("submission accepted")
	message := outcome.Message()
	if message == "" {
		message = "submission sent"
	}
	fmt.Fprintln(w, styles.TextSuccessStyle.Render(styles.IconNotifySuccess+" "+message))
	return nil
}

// resolveDescription returns the description flag value, reading stdin when
// the flag is "-" and stdin is piped.
func (cmd *SendCmd) resolveDescription() (string, error) {
	if cmd.description != "-" {
		return cmd.description, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no input provided (stdin is a terminal); pipe the description or pass it with -d")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// resolveAttachment expands the --attach glob and requires exactly one match.
func (cmd *SendCmd) resolveAttachment() (string, error) {
	if cmd.attach == "" {
		return "", nil
	}

	matches, err := doublestar.FilepathGlob(cmd.attach)
	if err != nil {
		return "", fmt.Errorf("bad attach pattern %q: %w", cmd.attach, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("attach pattern %q matched no files", cmd.attach)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("attach pattern %q matched %d files; narrow it to one", cmd.attach, len(matches))
	}
}

func (cmd *SendCmd) renderPreview(w io.Writer, sub intake.Submission) error {
	var md strings.Builder
	md.WriteString("# New project inquiry\n\n")
	fmt.Fprintf(&md, "- **Name:** %s\n", sub.Name)
	fmt.Fprintf(&md, "- **WhatsApp:** %s\n", sub.Whatsapp)
	fmt.Fprintf(&md, "- **Email:** %s\n", sub.Email)
	if sub.Attachment != nil {
		fmt.Fprintf(&md, "- **Attachment:** %s (%s, %d bytes)\n",
			sub.Attachment.Name, sub.Attachment.ContentType, len(sub.Attachment.Content))
	}
	md.WriteString("\n## Project description\n\n")
	md.WriteString(sub.ProjectDescription)
	md.WriteString("\n")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create preview renderer: %w", err)
	}

	rendered, err := renderer.Render(md.String())
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	fmt.Fprint(w, rendered)
	return nil
}
