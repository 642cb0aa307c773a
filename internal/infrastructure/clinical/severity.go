package clinical

import (
	"slices"
	"strings"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

// ClassifySeverity matches every symptom against every tier and reduces to the
// highest tier hit. Matching is case-insensitive substring containment, so a
// short keyword such as "fever" also fires inside "high fever".
func (e *Engine) ClassifySeverity(symptoms []string) domain.SeverityVerdict {
	verdict := domain.SeverityVerdict{
		Tier:      domain.TierLow,
		Emergency: []domain.Evidence{},
		High:      []domain.Evidence{},
		Moderate:  []domain.Evidence{},
	}

	for _, symptom := range symptoms {
		folded := strings.ToLower(strings.TrimSpace(symptom))
		if folded == "" {
			continue
		}
		for _, tier := range domain.MatchableTiers() {
			for _, kw := range e.keywords[tier] {
				if !strings.Contains(folded, kw.Phrase) {
					continue
				}
				ev := domain.Evidence{Symptom: symptom, Keyword: kw.Phrase, Rationale: kw.Rationale}
				switch tier {
				case domain.TierEmergency:
					verdict.Emergency = append(verdict.Emergency, ev)
				case domain.TierHigh:
					verdict.High = append(verdict.High, ev)
				case domain.TierModerate:
					verdict.Moderate = append(verdict.Moderate, ev)
				}
				if tier.MoreSevere(verdict.Tier) {
					verdict.Tier = tier
				}
			}
		}
	}

	guidance := e.guidance[verdict.Tier]
	verdict.Level = verdict.Tier.Level()
	verdict.ActionRequired = guidance.ActionRequired
	verdict.Recommendation = guidance.Recommendation
	verdict.Warning = guidance.Warning
	verdict.SelfCareTips = slices.Clone(guidance.SelfCareTips)
	if verdict.Tier == domain.TierLow {
		verdict.Symptoms = append([]string{}, symptoms...)
	}
	return verdict
}
