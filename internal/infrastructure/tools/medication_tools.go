package tools

import (
	"context"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

const (
	InteractionToolName = "check_drug_interactions"
	MedicationToolName  = "get_medication_info"
)

// InteractionTool checks a new medication against current ones.
type InteractionTool struct {
	svc Assessor
}

// NewInteractionTool creates the interaction tool.
func NewInteractionTool(svc Assessor) *InteractionTool {
	return &InteractionTool{svc: svc}
}

func (t *InteractionTool) Name() string { return InteractionToolName }

func (t *InteractionTool) Description() string {
	return "Check for drug interactions between current medications and a new medication."
}

func (t *InteractionTool) Schema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]interface{}{
			"current_medications": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated string of medication names currently being taken",
			},
			"new_medication": map[string]interface{}{
				"type":        "string",
				"description": "Name of the medication being considered",
			},
		},
		Required: []string{"current_medications", "new_medication"},
	}
}

// Execute runs the interaction check.
func (t *InteractionTool) Execute(ctx context.Context, input *Input) (*Result, error) {
	current, ok := listField(input.Data, "current_medications")
	if !ok {
		return failure("current_medications field is required and must be a string"), nil
	}
	newMedication, ok := stringField(input.Data, "new_medication")
	if !ok {
		return failure("new_medication field is required and must be a string"), nil
	}
	report, err := t.svc.CheckInteractions(ctx, domain.InteractionRequest{Current: current, New: newMedication})
	if err != nil {
		return fromServiceError(err)
	}
	return success(report)
}

// MedicationTool returns reference information for a medication.
type MedicationTool struct {
	svc Assessor
}

// NewMedicationTool creates the medication info tool.
func NewMedicationTool(svc Assessor) *MedicationTool {
	return &MedicationTool{svc: svc}
}

func (t *MedicationTool) Name() string { return MedicationToolName }

func (t *MedicationTool) Description() string {
	return "Get basic information about a medication."
}

func (t *MedicationTool) Schema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]interface{}{
			"medication_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the medication",
			},
		},
		Required: []string{"medication_name"},
	}
}

// Execute runs the lookup. An unknown medication is a successful call with status not_found.
func (t *MedicationTool) Execute(ctx context.Context, input *Input) (*Result, error) {
	name, ok := stringField(input.Data, "medication_name")
	if !ok {
		return failure("medication_name field is required and must be a string"), nil
	}
	lookup, err := t.svc.LookupMedication(ctx, domain.MedicationRequest{Name: name})
	if err != nil {
		return fromServiceError(err)
	}
	return success(lookup)
}
