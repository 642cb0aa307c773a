// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends only on these abstractions. Concrete adapters
// live in the infrastructure layer: the YAML config loader, the clinical
// rule engine, the sqlite history store and the slog-backed logger.
package ports

import (
	"context"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.healthdesk/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Classifier evaluates symptoms and medications against static tables.
// Implementations must be pure: no I/O, no shared mutable state.
type Classifier interface {
	ClassifySeverity(symptoms []string) domain.SeverityVerdict
	EvaluateDuration(symptom string, days int) domain.DurationVerdict
	CheckInteractions(current []string, newMedication string) domain.InteractionReport
	LookupMedication(name string) domain.MedicationLookup
}

// KnowledgeBase describes where the clinical tables came from and how large they are.
type KnowledgeBase interface {
	Source() string
	Stats() map[string]int
}

// HistoryRepository persists assessment records.
type HistoryRepository interface {
	Save(domain.AssessmentRecord) error
	Records(limit int, search string) ([]domain.AssessmentRecord, error)
	Clear() error
	ExportJSON(dest string) error
	PruneOlderThan(days int) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
