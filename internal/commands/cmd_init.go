package commands

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/devpro-studio/intake/internal/core/config"
	"github.com/devpro-studio/intake/internal/core/styles"
)

type InitCmd struct {
	flags *Flags
	force bool
	yes   bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create the intake config file with an interactive wizard",
		UsageText: "intake init [options]",
		Description: `Sets up intake for first-time use.

The wizard asks for the form endpoint, a color theme, and optional
prefill values for the contact form. The result is written to the
config path (see --config).

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer
	configPath := cmd.flags.ConfigPath

	if configExists(configPath) && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", configPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(configPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(w, styles.TextMutedStyle.Render("init cancelled"))
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !cmd.yes {
		if err := cmd.promptUser(&cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if configExists(configPath) {
		backupPath, err := backupConfig(configPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		fmt.Fprintln(w, styles.TextSuccessStyle.Render("backed up config to: "+backupPath))
	}

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Fprintln(w, styles.TextSuccessStyle.Render(styles.IconNotifySuccess+" wrote "+configPath))
	return nil
}

func (cmd *InitCmd) promptUser(cfg *config.Config) error {
	timeoutStr := strconv.Itoa(cfg.TimeoutSeconds)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Form endpoint").
				Description("URL of the contact form handler").
				Value(&cfg.Endpoint).
				Validate(validateEndpoint),
			huh.NewInput().
				Title("Request timeout (seconds)").
				Value(&timeoutStr).
				Validate(validateTimeout),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&cfg.Theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Your name (optional)").
				Description("Prefilled into the form").
				Value(&cfg.Prefill.Name),
			huh.NewInput().
				Title("Your email (optional)").
				Value(&cfg.Prefill.Email),
			huh.NewInput().
				Title("Your whatsapp (optional)").
				Value(&cfg.Prefill.Whatsapp),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	// Validated above.
	cfg.TimeoutSeconds, _ = strconv.Atoi(timeoutStr)
	return nil
}

func validateEndpoint(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an http(s) URL")
	}
	return nil
}

func validateTimeout(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 300 {
		return fmt.Errorf("must be a number of seconds between 1 and 300")
	}
	return nil
}

func configExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// backupConfig copies the existing config aside before it is overwritten.
func backupConfig(path string) (string, error) {
	backupPath := path + ".bak"
	_ = os.Remove(backupPath)

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read existing config: %w", err)
	}
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	return backupPath, nil
}
