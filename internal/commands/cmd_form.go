package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/devpro-studio/intake/internal/core/backend"
	"github.com/devpro-studio/intake/internal/tui"
)

type FormCmd struct {
	flags *Flags
}

// NewFormCmd creates the interactive form command.
func NewFormCmd(flags *Flags) *FormCmd {
	return &FormCmd{flags: flags}
}

func (cmd *FormCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "form",
		Usage:     "Open the interactive contact form",
		UsageText: "intake form",
		Action:    cmd.run,
	})
	return app
}

// Run executes the form TUI. Exported for use as default command.
func (cmd *FormCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *FormCmd) run(_ context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	deps := tui.Deps{
		Config: cfg,
		Client: backend.New(cfg.Endpoint, cfg.Timeout()),
	}

	p := tea.NewProgram(tui.New(deps))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	return nil
}
