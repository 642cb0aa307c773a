package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/healthdesk-go/internal/app"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/cli/commands"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/cli/helpers"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The returned container must be
// closed by the caller once the command has run.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, *app.Container, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, nil, err
	}
	return NewRootCmdWithContainer(container), container, nil
}

// NewRootCmdWithContainer builds the command tree around an existing container.
func NewRootCmdWithContainer(container *app.Container) *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:   "healthdesk",
		Short: "healthdesk - symptom and medication safety checks",
		Long: `healthdesk classifies symptom urgency, checks how long a symptom has lasted,
looks for known drug interactions and shows basic medication information.

It gives general information only and is not a substitute for a clinician.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&output, helpers.OutputFlag, "o", "text", "Output format (text|json)")

	root.AddCommand(
		commands.NewSeverityCommand(container),
		commands.NewDurationCommand(container),
		commands.NewInteractionsCommand(container),
		commands.NewMedicationCommand(container),
		commands.NewToolsCommand(container),
		commands.NewServeCommand(container),
		commands.NewHistoryCommand(container),
		commands.NewConfigCommand(container),
		commands.NewInitCommand(container),
		commands.NewDoctorCommand(container),
		commands.NewVersionCommand(),
	)
	return root
}
