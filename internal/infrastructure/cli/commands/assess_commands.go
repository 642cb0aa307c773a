package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/healthdesk-go/internal/app"
	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/clinical"
)

// NewSeverityCommand creates the severity command
func NewSeverityCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "severity <symptom> [symptom...]",
		Short: "Classify how urgently a set of symptoms needs attention",
		Long: `Classify symptoms into emergency, high, moderate or low urgency.

Each argument is one symptom; comma-separated lists are split as well:
  healthdesk severity "chest pain" cough
  healthdesk severity "headache, fever"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAssessment(container); err != nil {
				return err
			}
			verdict, err := container.AssessmentService.AssessSeverity(cmd.Context(), domain.SeverityRequest{
				Symptoms: splitArgs(args),
			})
			if err != nil {
				return err
			}
			return helpers.Render(cmd.OutOrStdout(), helpers.ResolveFormat(cmd, container), verdict, func(w io.Writer) {
				helpers.RenderSeverity(w, verdict)
			})
		},
	}
}

// NewDurationCommand creates the duration command
func NewDurationCommand(container *app.Container) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "duration <symptom> --days N",
		Short: "Check whether a symptom has lasted long enough to see a doctor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAssessment(container); err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				return errors.New(ErrDaysRequired)
			}
			verdict, err := container.AssessmentService.AssessDuration(cmd.Context(), domain.DurationRequest{
				Symptom: strings.Join(args, " "),
				Days:    days,
			})
			if err != nil {
				return err
			}
			return helpers.Render(cmd.OutOrStdout(), helpers.ResolveFormat(cmd, container), verdict, func(w io.Writer) {
				helpers.RenderDuration(w, verdict)
			})
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "How many days the symptom has persisted")
	return cmd
}

// NewInteractionsCommand creates the interactions command
func NewInteractionsCommand(container *app.Container) *cobra.Command {
	var (
		current []string
		newMed  string
	)

	cmd := &cobra.Command{
		Use:   "interactions --current \"a, b\" --new X",
		Short: "Check a new medication against the ones already being taken",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAssessment(container); err != nil {
				return err
			}
			if strings.TrimSpace(newMed) == "" {
				return errors.New(ErrNewMedicationRequired)
			}
			report, err := container.AssessmentService.CheckInteractions(cmd.Context(), domain.InteractionRequest{
				Current: splitArgs(current),
				New:     newMed,
			})
			if err != nil {
				return err
			}
			return helpers.Render(cmd.OutOrStdout(), helpers.ResolveFormat(cmd, container), report, func(w io.Writer) {
				helpers.RenderInteractions(w, report)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&current, "current", "c", nil, "Current medications (comma-separated or repeated)")
	cmd.Flags().StringVarP(&newMed, "new", "n", "", "Medication being considered")
	return cmd
}

// NewMedicationCommand creates the medication command
func NewMedicationCommand(container *app.Container) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "medication <name>",
		Short: "Show reference information for a medication",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAssessment(container); err != nil {
				return err
			}
			format := helpers.ResolveFormat(cmd, container)
			if list {
				return listMedications(cmd.OutOrStdout(), format, container.Engine)
			}
			if len(args) == 0 {
				return errors.New(ErrMedicationNameRequired)
			}
			lookup, err := container.AssessmentService.LookupMedication(cmd.Context(), domain.MedicationRequest{
				Name: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			return helpers.Render(cmd.OutOrStdout(), format, lookup, func(w io.Writer) {
				helpers.RenderMedication(w, lookup)
			})
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List every medication in the knowledge base")
	return cmd
}

func listMedications(out io.Writer, format string, engine *clinical.Engine) error {
	if engine == nil {
		return errors.New(ErrKnowledgeBaseUnavailable)
	}
	names := engine.Medications()
	if format == domain.OutputJSON {
		return helpers.WriteJSON(out, names)
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func requireAssessment(container *app.Container) error {
	if container == nil || container.AssessmentService == nil {
		return errors.New(ErrAssessmentUnavailable)
	}
	return nil
}

// splitArgs treats each argument as an entry and splits embedded commas.
func splitArgs(args []string) []string {
	var out []string
	for _, arg := range args {
		out = append(out, clinical.SplitList(arg)...)
	}
	return out
}
