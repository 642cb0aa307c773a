package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/healthdesk-go/internal/app"
	configapp "github.com/doeshing/healthdesk-go/internal/application/config"
	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/healthdesk-go/internal/infrastructure/config"
)

// NewInitCommand creates the init command to write a fresh configuration file.
func NewInitCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize healthdesk configuration",
		Long: `Initialize healthdesk configuration interactively.

This command writes ~/.healthdesk/config.yaml (or $HEALTHDESK_CONFIG).
Afterwards run 'healthdesk doctor' to verify the setup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitWizard(cmd, container, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config without prompting")
	return cmd
}

func runInitWizard(cmd *cobra.Command, container *app.Container, force bool) error {
	loader, err := helpers.GetConfigLoader(container)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())
	configPath := loader.Path()

	if _, err := os.Stat(configPath); err == nil && !force {
		question := fmt.Sprintf("%s exists. Overwrite?", configPath)
		if !helpers.PromptForYesNo(out, reader, question, false) {
			fmt.Fprintln(out, MsgInitCancelled)
			return nil
		}
	}

	cfg := promptForPreferences(out, reader, configinfra.DefaultConfig())

	if err := configapp.Validate(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		backupPath, err := loader.Backup()
		if err != nil {
			return fmt.Errorf("failed to create configuration backup: %w", err)
		}
		fmt.Fprintf(out, "Existing config backed up to: %s\n", backupPath)
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration initialized: %s\n", configPath)
	fmt.Fprintln(out, "Verify your setup with: healthdesk doctor")
	return nil
}

func promptForPreferences(out io.Writer, reader *bufio.Reader, cfg domain.Config) domain.Config {
	fmt.Fprintln(out, "\nConfiguration preferences:")

	cfg.History.Enabled = helpers.PromptForYesNo(out, reader,
		"Record assessment history?", cfg.History.Enabled)

	if cfg.History.Enabled {
		cfg.History.RetentionDays = helpers.PromptForInt(out, reader,
			"Days to keep history (0 keeps forever)", cfg.History.RetentionDays)
	}

	format := strings.ToLower(helpers.PromptForChoice(out, reader,
		"Default output format (text/json)", cfg.Output.Format))
	if format == domain.OutputText || format == domain.OutputJSON {
		cfg.Output.Format = format
	}

	cfg.Knowledge.File = helpers.PromptForChoice(out, reader,
		"Custom knowledge file (missing file uses built-in tables)", cfg.Knowledge.File)

	cfg.Server.Addr = helpers.PromptForChoice(out, reader,
		"HTTP listen address for 'healthdesk serve'", cfg.Server.Addr)

	return cfg
}
