package domain

import "time"

// AssessmentKind names the operation an assessment record came from.
type AssessmentKind string

const (
	KindSeverity    AssessmentKind = "severity"
	KindDuration    AssessmentKind = "duration"
	KindInteraction AssessmentKind = "interaction"
	KindMedication  AssessmentKind = "medication"
)

// AssessmentRecord captures one evaluated request and its outcome.
type AssessmentRecord struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Kind      AssessmentKind `json:"kind"`
	Input     string         `json:"input"`
	Outcome   string         `json:"outcome"`
	Level     string         `json:"level"`
}
