package clinical

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	return engine
}

func TestClassifySeverityChestPainIsAlwaysEmergency(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		symptoms []string
	}{
		{name: "exact", symptoms: []string{"chest pain"}},
		{name: "upper case", symptoms: []string{"CHEST PAIN"}},
		{name: "mixed case", symptoms: []string{"Chest Pain"}},
		{name: "inside longer phrase", symptoms: []string{"sharp chest pain since morning"}},
		{name: "alongside milder symptoms", symptoms: []string{"cough", "chest pain", "fatigue"}},
		{name: "alongside high symptoms", symptoms: []string{"high fever", "persistent vomiting", "chest pains"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := engine.ClassifySeverity(tt.symptoms)
			if verdict.Tier != domain.TierEmergency {
				t.Fatalf("tier = %s, want emergency", verdict.Tier)
			}
			if verdict.Level != 5 {
				t.Errorf("level = %d, want 5", verdict.Level)
			}
			if verdict.ActionRequired != "IMMEDIATE MEDICAL ATTENTION" {
				t.Errorf("action = %q", verdict.ActionRequired)
			}
			if len(verdict.Emergency) == 0 {
				t.Error("expected emergency evidence")
			}
		})
	}
}

func TestClassifySeverityTierOrdering(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		symptoms []string
		want     domain.SeverityTier
	}{
		{name: "moderate and high", symptoms: []string{"cough", "persistent vomiting"}, want: domain.TierHigh},
		{name: "high before moderate", symptoms: []string{"severe diarrhea", "fatigue"}, want: domain.TierHigh},
		{name: "moderate only", symptoms: []string{"sore throat", "congestion"}, want: domain.TierModerate},
		{name: "no match", symptoms: []string{"itchy elbow"}, want: domain.TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := engine.ClassifySeverity(tt.symptoms)
			if verdict.Tier != tt.want {
				t.Fatalf("tier = %s, want %s", verdict.Tier, tt.want)
			}
			if verdict.Level != tt.want.Level() {
				t.Errorf("level = %d, want %d", verdict.Level, tt.want.Level())
			}
		})
	}
}

func TestClassifySeverityKeepsLowerTierEvidence(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.ClassifySeverity([]string{"High Fever", "seizure"})

	if verdict.Tier != domain.TierEmergency {
		t.Fatalf("tier = %s, want emergency", verdict.Tier)
	}
	wantHigh := []domain.Evidence{
		{Symptom: "High Fever", Keyword: "high fever", Rationale: "Fever above 103°F (39.4°C)"},
	}
	if diff := cmp.Diff(wantHigh, verdict.High); diff != "" {
		t.Errorf("high evidence mismatch (-want +got):\n%s", diff)
	}
	wantModerate := []domain.Evidence{
		{Symptom: "High Fever", Keyword: "fever", Rationale: "Monitor temperature, manage with OTC medication"},
	}
	if diff := cmp.Diff(wantModerate, verdict.Moderate); diff != "" {
		t.Errorf("moderate evidence mismatch (-want +got):\n%s", diff)
	}
	if verdict.Recommendation != "Call 911 or go to the emergency room immediately" {
		t.Errorf("recommendation should come from the winning tier, got %q", verdict.Recommendation)
	}
	if len(verdict.SelfCareTips) != 0 {
		t.Errorf("self-care tips leaked from moderate tier: %v", verdict.SelfCareTips)
	}
}

func TestClassifySeverityRecordsEveryKeywordInATier(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.ClassifySeverity([]string{"cough with fever"})

	if verdict.Tier != domain.TierModerate {
		t.Fatalf("tier = %s, want moderate", verdict.Tier)
	}
	if len(verdict.Moderate) != 2 {
		t.Fatalf("expected two moderate entries, got %+v", verdict.Moderate)
	}
	if verdict.Moderate[0].Keyword != "fever" || verdict.Moderate[1].Keyword != "cough" {
		t.Errorf("entries should follow keyword declaration order, got %+v", verdict.Moderate)
	}
	if len(verdict.SelfCareTips) == 0 {
		t.Error("moderate verdict should carry self-care tips")
	}
}

func TestClassifySeverityEmptyListIsLow(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.ClassifySeverity(nil)

	if verdict.Tier != domain.TierLow || verdict.Level != 1 {
		t.Fatalf("expected low/1, got %s/%d", verdict.Tier, verdict.Level)
	}
	if len(verdict.Emergency)+len(verdict.High)+len(verdict.Moderate) != 0 {
		t.Errorf("expected no evidence, got %+v", verdict)
	}
	if verdict.ActionRequired != "ROUTINE CARE" {
		t.Errorf("action = %q", verdict.ActionRequired)
	}
}

func TestClassifySeverityLowEchoesInput(t *testing.T) {
	engine := newTestEngine(t)

	input := []string{"itchy elbow", "sneezing"}
	verdict := engine.ClassifySeverity(input)

	if diff := cmp.Diff(input, verdict.Symptoms); diff != "" {
		t.Errorf("symptoms mismatch (-want +got):\n%s", diff)
	}
	input[0] = "mutated"
	if verdict.Symptoms[0] != "itchy elbow" {
		t.Error("verdict must not alias the caller's slice")
	}
}
