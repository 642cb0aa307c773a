// Package tools exposes the assessment operations as named, schema-described
// capabilities that a dispatcher (HTTP, CLI or an agent) can invoke by name.
package tools

import (
	"context"
	"time"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

// Input represents input data for tool execution.
type Input struct {
	Name string                 `json:"name"`
	Data map[string]interface{} `json:"data"`
}

// Result represents the result of tool execution.
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Stats   Stats                  `json:"stats,omitempty"`
}

// Stats tracks tool execution statistics.
type Stats struct {
	ExecutionTime time.Duration `json:"execution_time"`
}

// Schema defines the JSON schema for tool input validation.
type Schema struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Required   []string               `json:"required,omitempty"`
}

// Tool defines the interface that all tools must implement.
type Tool interface {
	Name() string
	Description() string
	Schema() *Schema
	Execute(ctx context.Context, input *Input) (*Result, error)
}

// Assessor is the subset of the assessment service the tools delegate to.
type Assessor interface {
	AssessSeverity(context.Context, domain.SeverityRequest) (domain.SeverityVerdict, error)
	AssessDuration(context.Context, domain.DurationRequest) (domain.DurationVerdict, error)
	CheckInteractions(context.Context, domain.InteractionRequest) (domain.InteractionReport, error)
	LookupMedication(context.Context, domain.MedicationRequest) (domain.MedicationLookup, error)
}
