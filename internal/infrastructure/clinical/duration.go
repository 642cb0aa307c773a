package clinical

import (
	"fmt"
	"strings"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

const (
	msgDurationExceeded = "%s lasting more than %d days should be evaluated by a doctor"
	msgDurationWithin   = "%s duration is within normal range"
	msgDurationUnknown  = "Continue monitoring symptoms"
	recDurationExceeded = "Schedule an appointment with your healthcare provider"
	recDurationWithin   = "Continue monitoring. Seek care if symptoms worsen"
	recDurationUnknown  = "Consult healthcare provider if concerned"
)

// EvaluateDuration compares days against the first threshold whose key appears
// in symptom. Thresholds are checked in declaration order and the limit is
// inclusive, so days == max_days still means monitor.
func (e *Engine) EvaluateDuration(symptom string, days int) domain.DurationVerdict {
	folded := strings.ToLower(strings.TrimSpace(symptom))
	verdict := domain.DurationVerdict{
		Symptom:      symptom,
		DurationDays: days,
	}

	for _, th := range e.thresholds {
		if !strings.Contains(folded, th.Key) {
			continue
		}
		key, maxDays := th.Key, th.MaxDays
		verdict.MatchedKey = &key
		verdict.ThresholdDays = &maxDays
		if days > maxDays {
			verdict.Status = domain.DurationSeekCare
			verdict.Message = fmt.Sprintf(msgDurationExceeded, symptom, maxDays)
			verdict.Recommendation = recDurationExceeded
		} else {
			verdict.Status = domain.DurationMonitor
			verdict.Message = fmt.Sprintf(msgDurationWithin, symptom)
			verdict.Recommendation = recDurationWithin
		}
		return verdict
	}

	verdict.Status = domain.DurationMonitor
	verdict.Message = msgDurationUnknown
	verdict.Recommendation = recDurationUnknown
	return verdict
}
