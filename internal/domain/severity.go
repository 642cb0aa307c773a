package domain

import "strings"

// SeverityTier enumerates triage outcomes, ordered by urgency.
type SeverityTier string

const (
	TierLow       SeverityTier = "low"
	TierModerate  SeverityTier = "moderate"
	TierHigh      SeverityTier = "high"
	TierEmergency SeverityTier = "emergency"
)

var tierRank = map[SeverityTier]int{
	TierLow:       1,
	TierModerate:  3,
	TierHigh:      4,
	TierEmergency: 5,
}

// Level returns the numeric severity level (Emergency=5 ... Low=1), or 0 for unknown tiers.
func (t SeverityTier) Level() int {
	return tierRank[t]
}

// MoreSevere reports whether t outranks other.
func (t SeverityTier) MoreSevere(other SeverityTier) bool {
	return t.Level() > other.Level()
}

// Label is the upper-case heading used when rendering a verdict.
func (t SeverityTier) Label() string {
	if t == TierHigh {
		return "HIGH PRIORITY"
	}
	return strings.ToUpper(string(t))
}

// MatchableTiers lists the tiers that carry keyword tables, highest first.
func MatchableTiers() []SeverityTier {
	return []SeverityTier{TierEmergency, TierHigh, TierModerate}
}

// ParseSeverityTier maps a case-insensitive name onto a tier.
func ParseSeverityTier(value string) (SeverityTier, bool) {
	tier := SeverityTier(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := tierRank[tier]; !ok {
		return "", false
	}
	return tier, true
}

// SymptomKeyword is a literal phrase bound to a tier.
type SymptomKeyword struct {
	Phrase    string       `yaml:"phrase" json:"phrase"`
	Tier      SeverityTier `yaml:"-" json:"tier"`
	Rationale string       `yaml:"rationale" json:"rationale"`
}

// Evidence records one matched input phrase with the keyword's rationale.
type Evidence struct {
	Symptom   string `json:"symptom"`
	Keyword   string `json:"keyword"`
	Rationale string `json:"reason"`
}

// TierGuidance holds the texts shown when a tier wins.
type TierGuidance struct {
	ActionRequired string   `yaml:"action_required" json:"action_required"`
	Recommendation string   `yaml:"recommendation" json:"recommendation"`
	Warning        string   `yaml:"warning,omitempty" json:"warning,omitempty"`
	SelfCareTips   []string `yaml:"self_care_tips,omitempty" json:"self_care_tips,omitempty"`
}

// SeverityVerdict is the reduced outcome of a severity classification.
// Evidence lists stay populated for every tier that matched, but the guidance
// texts come only from the winning tier.
type SeverityVerdict struct {
	Tier           SeverityTier `json:"severity"`
	Level          int          `json:"severity_level"`
	ActionRequired string       `json:"action_required"`
	Recommendation string       `json:"recommendation"`
	Warning        string       `json:"warning,omitempty"`
	SelfCareTips   []string     `json:"self_care_tips,omitempty"`
	Emergency      []Evidence   `json:"emergency_symptoms"`
	High           []Evidence   `json:"high_priority_symptoms"`
	Moderate       []Evidence   `json:"moderate_symptoms"`
	Symptoms       []string     `json:"symptoms,omitempty"`
}

// EvidenceFor returns the evidence recorded for a tier.
func (v SeverityVerdict) EvidenceFor(tier SeverityTier) []Evidence {
	switch tier {
	case TierEmergency:
		return v.Emergency
	case TierHigh:
		return v.High
	case TierModerate:
		return v.Moderate
	default:
		return nil
	}
}

// WinningEvidence returns the evidence of the tier that decided the verdict.
func (v SeverityVerdict) WinningEvidence() []Evidence {
	return v.EvidenceFor(v.Tier)
}
