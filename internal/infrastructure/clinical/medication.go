package clinical

import (
	"fmt"
	"slices"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

// LookupMedication matches name exactly (case-insensitive) against generic
// names. Unlike symptom matching, a partial name never hits.
func (e *Engine) LookupMedication(name string) domain.MedicationLookup {
	rec, ok := e.medications[normalize(name)]
	if !ok {
		return domain.MedicationLookup{
			Status:     domain.LookupNotFound,
			Medication: name,
			Message:    fmt.Sprintf("Information for '%s' not found in database", name),
		}
	}
	return domain.MedicationLookup{
		Status:     domain.LookupFound,
		Medication: name,
		Record:     cloneMedication(rec),
	}
}

// Medications lists the known generic names in sorted order.
func (e *Engine) Medications() []string {
	names := make([]string, 0, len(e.medications))
	for _, rec := range e.medications {
		names = append(names, rec.GenericName)
	}
	slices.Sort(names)
	return names
}

func cloneMedication(rec domain.MedicationRecord) *domain.MedicationRecord {
	rec.BrandNames = slices.Clone(rec.BrandNames)
	rec.CommonUses = slices.Clone(rec.CommonUses)
	rec.CommonSideEffects = slices.Clone(rec.CommonSideEffects)
	rec.Warnings = slices.Clone(rec.Warnings)
	return &rec
}
