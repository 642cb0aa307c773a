package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/healthdesk-go/internal/app"
	"github.com/doeshing/healthdesk-go/internal/domain"
)

// OutputFlag is the persistent flag selecting text or json rendering.
const OutputFlag = "output"

// ResolveFormat picks --output when given, else the configured default.
func ResolveFormat(cmd *cobra.Command, container *app.Container) string {
	if flag := cmd.Flag(OutputFlag); flag != nil && flag.Changed {
		return strings.ToLower(flag.Value.String())
	}
	if container != nil && container.OutputFormat != "" {
		return strings.ToLower(container.OutputFormat)
	}
	return domain.OutputText
}

// Render writes v as indented JSON, or through text followed by the safety disclaimer.
func Render(out io.Writer, format string, v interface{}, text func(io.Writer)) error {
	switch format {
	case domain.OutputJSON:
		return WriteJSON(out, v)
	case domain.OutputText, "":
		text(out)
		fmt.Fprintf(out, "\n%s\n", domain.SafetyDisclaimer)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text|json)", format)
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderSeverity prints a severity verdict.
func RenderSeverity(out io.Writer, v domain.SeverityVerdict) {
	fmt.Fprintf(out, "Severity: %s (level %d)\n", v.Tier.Label(), v.Level)
	fmt.Fprintf(out, "Action: %s\n", v.ActionRequired)
	fmt.Fprintf(out, "Recommendation: %s\n", v.Recommendation)
	PrintWarnings(out, []string{v.Warning})

	printEvidence(out, "Emergency symptoms", v.Emergency)
	printEvidence(out, "High priority symptoms", v.High)
	printEvidence(out, "Moderate symptoms", v.Moderate)

	if len(v.Symptoms) > 0 {
		fmt.Fprintf(out, "Reported symptoms: %s\n", strings.Join(v.Symptoms, ", "))
	}
	printList(out, "Self-care tips", v.SelfCareTips)
}

func printEvidence(out io.Writer, heading string, evidence []domain.Evidence) {
	if len(evidence) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", heading)
	for _, ev := range evidence {
		fmt.Fprintf(out, "  - %s [%s]: %s\n", ev.Symptom, ev.Keyword, ev.Rationale)
	}
}

// RenderDuration prints a duration verdict.
func RenderDuration(out io.Writer, v domain.DurationVerdict) {
	status := "MONITOR"
	if v.SeekCare() {
		status = "SEEK CARE"
	}
	fmt.Fprintf(out, "Status: %s\n", status)
	fmt.Fprintf(out, "Symptom: %s for %d day(s)\n", v.Symptom, v.DurationDays)
	if v.MatchedKey != nil && v.ThresholdDays != nil {
		fmt.Fprintf(out, "Threshold: %s (%d days)\n", *v.MatchedKey, *v.ThresholdDays)
	}
	fmt.Fprintln(out, v.Message)
	fmt.Fprintf(out, "Recommendation: %s\n", v.Recommendation)
}

// RenderInteractions prints an interaction report.
func RenderInteractions(out io.Writer, r domain.InteractionReport) {
	fmt.Fprintln(out, r.Message)
	for _, match := range r.Interactions {
		fmt.Fprintf(out, "\n[%s] %s + %s\n", strings.ToUpper(string(match.Severity)), match.CurrentMedication, match.NewMedication)
		fmt.Fprintf(out, "  %s\n", match.Description)
		if match.Recommendation != "" {
			fmt.Fprintf(out, "  Recommendation: %s\n", match.Recommendation)
		}
	}
}

// RenderMedication prints a medication lookup.
func RenderMedication(out io.Writer, m domain.MedicationLookup) {
	if !m.Found() {
		fmt.Fprintln(out, m.Message)
		return
	}
	rec := m.Record
	fmt.Fprintf(out, "%s\n", rec.GenericName)
	if len(rec.BrandNames) > 0 {
		fmt.Fprintf(out, "Brand names: %s\n", strings.Join(rec.BrandNames, ", "))
	}
	fmt.Fprintf(out, "Drug class: %s\n", rec.DrugClass)
	printList(out, "Common uses", rec.CommonUses)
	printList(out, "Common side effects", rec.CommonSideEffects)
	PrintWarnings(out, rec.Warnings)
}

// RenderHealthReport prints doctor checks.
func RenderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}

func printList(out io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", heading)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
