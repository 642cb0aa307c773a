package tools

import (
	"context"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

const (
	SeverityToolName = "assess_symptom_severity"
	DurationToolName = "check_symptom_duration"
)

// SeverityTool classifies a comma-separated symptom list.
type SeverityTool struct {
	svc Assessor
}

// NewSeverityTool creates the severity tool.
func NewSeverityTool(svc Assessor) *SeverityTool {
	return &SeverityTool{svc: svc}
}

func (t *SeverityTool) Name() string { return SeverityToolName }

func (t *SeverityTool) Description() string {
	return "Assess the severity of symptoms and determine if medical attention is needed."
}

func (t *SeverityTool) Schema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]interface{}{
			"symptoms": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated list of symptoms (e.g., 'headache, fever, cough')",
			},
		},
		Required: []string{"symptoms"},
	}
}

// Execute runs the severity classification.
func (t *SeverityTool) Execute(ctx context.Context, input *Input) (*Result, error) {
	symptoms, ok := listField(input.Data, "symptoms")
	if !ok {
		return failure("symptoms field is required and must be a string"), nil
	}
	verdict, err := t.svc.AssessSeverity(ctx, domain.SeverityRequest{Symptoms: symptoms})
	if err != nil {
		return fromServiceError(err)
	}
	return success(verdict)
}

// DurationTool checks whether a symptom has lasted past its threshold.
type DurationTool struct {
	svc Assessor
}

// NewDurationTool creates the duration tool.
func NewDurationTool(svc Assessor) *DurationTool {
	return &DurationTool{svc: svc}
}

func (t *DurationTool) Name() string { return DurationToolName }

func (t *DurationTool) Description() string {
	return "Check if symptom duration requires medical attention."
}

func (t *DurationTool) Schema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]interface{}{
			"symptom": map[string]interface{}{
				"type":        "string",
				"description": "The symptom being experienced",
			},
			"duration_days": map[string]interface{}{
				"type":        "integer",
				"description": "How many days the symptom has persisted",
				"minimum":     0,
			},
		},
		Required: []string{"symptom", "duration_days"},
	}
}

// Execute runs the duration evaluation.
func (t *DurationTool) Execute(ctx context.Context, input *Input) (*Result, error) {
	symptom, ok := stringField(input.Data, "symptom")
	if !ok {
		return failure("symptom field is required and must be a string"), nil
	}
	days, ok := intField(input.Data, "duration_days")
	if !ok {
		return failure("duration_days field is required and must be an integer"), nil
	}
	verdict, err := t.svc.AssessDuration(ctx, domain.DurationRequest{Symptom: symptom, Days: days})
	if err != nil {
		return fromServiceError(err)
	}
	return success(verdict)
}
