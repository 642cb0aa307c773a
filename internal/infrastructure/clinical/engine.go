// Package clinical evaluates symptom and medication lists against static tables.
//
// An Engine is built once from a Document and never mutated afterwards, so
// every method is safe to call from any number of goroutines.
package clinical

import (
	"fmt"
	"strings"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/pkg/filesystem"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

// Engine implements the ports.Classifier port.
type Engine struct {
	keywords     map[domain.SeverityTier][]domain.SymptomKeyword
	guidance     map[domain.SeverityTier]domain.TierGuidance
	thresholds   []domain.DurationThreshold
	interactions map[pairKey]domain.InteractionRecord
	medications  map[string]domain.MedicationRecord
	source       string
}

// EmbeddedSource names the compiled-in tables.
const EmbeddedSource = "embedded"

type pairKey struct {
	a, b string
}

// NewEngine validates doc and compiles it into lookup tables.
func NewEngine(doc Document) (*Engine, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		keywords:     make(map[domain.SeverityTier][]domain.SymptomKeyword),
		guidance:     make(map[domain.SeverityTier]domain.TierGuidance),
		interactions: make(map[pairKey]domain.InteractionRecord, len(doc.Interactions)),
		medications:  make(map[string]domain.MedicationRecord, len(doc.Medications)),
	}

	for name, section := range doc.Severity {
		tier, _ := domain.ParseSeverityTier(name)
		e.guidance[tier] = section.Guidance
		for _, kw := range section.Keywords {
			e.keywords[tier] = append(e.keywords[tier], domain.SymptomKeyword{
				Phrase:    normalize(kw.Phrase),
				Tier:      tier,
				Rationale: kw.Rationale,
			})
		}
	}

	e.thresholds = make([]domain.DurationThreshold, 0, len(doc.DurationThresholds))
	for _, th := range doc.DurationThresholds {
		e.thresholds = append(e.thresholds, domain.DurationThreshold{Key: normalize(th.Key), MaxDays: th.MaxDays})
	}

	for _, rec := range doc.Interactions {
		rec.Severity, _ = domain.ParseInteractionSeverity(string(rec.Severity))
		e.interactions[pairKey{normalize(rec.Drugs[0]), normalize(rec.Drugs[1])}] = rec
	}

	for _, med := range doc.Medications {
		e.medications[normalize(med.GenericName)] = med
	}

	return e, nil
}

// Load builds an Engine from the knowledge file at path, or from the embedded
// tables when the file does not exist.
func Load(path string) (*Engine, error) {
	doc, fallback, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	e, err := NewEngine(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !fallback {
		e.source = filesystem.ExpandPath(path)
	}
	return e, nil
}

// Default builds an Engine from the embedded tables.
func Default() (*Engine, error) {
	doc, err := DefaultDocument()
	if err != nil {
		return nil, err
	}
	return NewEngine(doc)
}

// Source is the knowledge file the engine was built from, or "embedded".
func (e *Engine) Source() string {
	if e.source == "" {
		return EmbeddedSource
	}
	return e.source
}

// Stats reports table sizes, mostly for diagnostics.
func (e *Engine) Stats() map[string]int {
	keywords := 0
	for _, list := range e.keywords {
		keywords += len(list)
	}
	return map[string]int{
		"symptom_keywords":    keywords,
		"duration_thresholds": len(e.thresholds),
		"interactions":        len(e.interactions),
		"medications":         len(e.medications),
	}
}

// SplitList turns a comma-joined list into trimmed, non-empty entries.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// CleanList trims entries and drops the empty ones.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

var (
	_ ports.Classifier    = (*Engine)(nil)
	_ ports.KnowledgeBase = (*Engine)(nil)
)
