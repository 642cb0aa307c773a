package clinical

import (
	"fmt"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

// CheckInteractions probes the pair table for every current medication against
// newMedication, in both orientations. Each matching current medication adds
// its own entry, so no deduplication happens here.
func (e *Engine) CheckInteractions(current []string, newMedication string) domain.InteractionReport {
	next := normalize(newMedication)
	matches := []domain.InteractionMatch{}

	for _, med := range current {
		folded := normalize(med)
		if folded == "" || next == "" {
			continue
		}
		rec, ok := e.interactions[pairKey{folded, next}]
		if !ok {
			rec, ok = e.interactions[pairKey{next, folded}]
		}
		if !ok {
			continue
		}
		matches = append(matches, domain.InteractionMatch{
			InteractionRecord: rec,
			CurrentMedication: med,
			NewMedication:     newMedication,
		})
	}

	if len(matches) == 0 {
		return domain.InteractionReport{
			Status:       domain.InteractionStatusSuccess,
			Interactions: matches,
			Message:      fmt.Sprintf("No known interactions found between %s and current medications", newMedication),
		}
	}
	return domain.InteractionReport{
		Status:          domain.InteractionStatusWarning,
		HasInteractions: true,
		Count:           len(matches),
		Interactions:    matches,
		Message:         fmt.Sprintf("Found %d potential drug interaction(s)", len(matches)),
	}
}
