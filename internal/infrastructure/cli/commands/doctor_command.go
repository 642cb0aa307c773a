package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/healthdesk-go/internal/app"
	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/cli/helpers"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration, knowledge tables and history storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DoctorService == nil {
				return errors.New(ErrDoctorServiceUnavailable)
			}

			report, err := container.DoctorService.Run(cmd.Context())

			// Display report even if there were errors
			if helpers.ResolveFormat(cmd, container) == domain.OutputJSON {
				if jsonErr := helpers.WriteJSON(cmd.OutOrStdout(), report); jsonErr != nil {
					return jsonErr
				}
			} else {
				helpers.RenderHealthReport(cmd.OutOrStdout(), report)
			}

			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			return nil
		},
	}
}
