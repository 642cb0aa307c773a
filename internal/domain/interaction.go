package domain

import "strings"

// InteractionSeverity grades a drug interaction.
type InteractionSeverity string

const (
	InteractionSevere   InteractionSeverity = "severe"
	InteractionModerate InteractionSeverity = "moderate"
	InteractionMild     InteractionSeverity = "mild"
)

// ParseInteractionSeverity maps a case-insensitive name onto a severity.
func ParseInteractionSeverity(value string) (InteractionSeverity, bool) {
	switch s := InteractionSeverity(strings.ToLower(strings.TrimSpace(value))); s {
	case InteractionSevere, InteractionModerate, InteractionMild:
		return s, true
	default:
		return "", false
	}
}

// InteractionRecord is a static table entry for an unordered drug pair.
type InteractionRecord struct {
	Drugs          [2]string           `yaml:"drugs" json:"drugs"`
	Severity       InteractionSeverity `yaml:"severity" json:"severity"`
	Description    string              `yaml:"description" json:"description"`
	Recommendation string              `yaml:"recommendation" json:"recommendation"`
}

// InteractionMatch is a table hit annotated with the caller's medication names.
type InteractionMatch struct {
	InteractionRecord
	CurrentMedication string `json:"current_medication"`
	NewMedication     string `json:"new_medication"`
}

// InteractionStatus summarises a report.
type InteractionStatus string

const (
	InteractionStatusWarning InteractionStatus = "warning"
	InteractionStatusSuccess InteractionStatus = "success"
)

// InteractionReport aggregates all matches between current medications and a new one.
// An empty report means no table entry matched. It does not mean the combination is safe.
type InteractionReport struct {
	Status          InteractionStatus  `json:"status"`
	HasInteractions bool               `json:"has_interactions"`
	Count           int                `json:"interaction_count"`
	Interactions    []InteractionMatch `json:"interactions"`
	Message         string             `json:"message"`
}

// MostSevere returns the highest severity present, or "" when empty.
func (r InteractionReport) MostSevere() InteractionSeverity {
	rank := map[InteractionSeverity]int{InteractionMild: 1, InteractionModerate: 2, InteractionSevere: 3}
	var top InteractionSeverity
	for _, match := range r.Interactions {
		if rank[match.Severity] > rank[top] {
			top = match.Severity
		}
	}
	return top
}
