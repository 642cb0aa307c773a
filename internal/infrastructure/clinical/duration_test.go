package clinical

import (
	"testing"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

func TestEvaluateDurationThresholds(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name       string
		symptom    string
		days       int
		wantStatus domain.DurationStatus
		wantMax    int
	}{
		{name: "fever at threshold", symptom: "fever", days: 3, wantStatus: domain.DurationMonitor, wantMax: 3},
		{name: "fever past threshold", symptom: "fever", days: 4, wantStatus: domain.DurationSeekCare, wantMax: 3},
		{name: "fever zero days", symptom: "Fever", days: 0, wantStatus: domain.DurationMonitor, wantMax: 3},
		{name: "cough long", symptom: "dry cough", days: 11, wantStatus: domain.DurationSeekCare, wantMax: 10},
		{name: "fatigue within", symptom: "FATIGUE", days: 14, wantStatus: domain.DurationMonitor, wantMax: 14},
		{name: "generic pain", symptom: "back pain", days: 8, wantStatus: domain.DurationSeekCare, wantMax: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := engine.EvaluateDuration(tt.symptom, tt.days)
			if verdict.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", verdict.Status, tt.wantStatus)
			}
			if verdict.ThresholdDays == nil || *verdict.ThresholdDays != tt.wantMax {
				t.Fatalf("threshold = %v, want %d", verdict.ThresholdDays, tt.wantMax)
			}
			if verdict.DurationDays != tt.days || verdict.Symptom != tt.symptom {
				t.Errorf("input not echoed: %+v", verdict)
			}
		})
	}
}

func TestEvaluateDurationSeekCareMessage(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.EvaluateDuration("fever", 4)

	want := "fever lasting more than 3 days should be evaluated by a doctor"
	if verdict.Message != want {
		t.Errorf("message = %q, want %q", verdict.Message, want)
	}
	if !verdict.SeekCare() {
		t.Error("SeekCare() = false")
	}
}

func TestEvaluateDurationFirstMatchWins(t *testing.T) {
	engine := newTestEngine(t)

	// "fever" is declared before "headache" and "pain".
	verdict := engine.EvaluateDuration("fever with headache and pain", 5)

	if verdict.MatchedKey == nil || *verdict.MatchedKey != "fever" {
		t.Fatalf("matched key = %v, want fever", verdict.MatchedKey)
	}
	if verdict.Status != domain.DurationSeekCare {
		t.Errorf("status = %s, want seek_care", verdict.Status)
	}

	// "headache" precedes "pain", so a 7-day headache stays within range.
	verdict = engine.EvaluateDuration("headache pain", 7)
	if *verdict.MatchedKey != "headache" || verdict.Status != domain.DurationMonitor {
		t.Errorf("got %s/%s, want headache/monitor", *verdict.MatchedKey, verdict.Status)
	}
}

func TestEvaluateDurationUnknownSymptom(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.EvaluateDuration("mystery-symptom", 100)

	if verdict.Status != domain.DurationMonitor {
		t.Fatalf("status = %s, want monitor", verdict.Status)
	}
	if verdict.ThresholdDays != nil || verdict.MatchedKey != nil {
		t.Errorf("expected no threshold data, got %+v", verdict)
	}
	if verdict.Recommendation != "Consult healthcare provider if concerned" {
		t.Errorf("recommendation = %q", verdict.Recommendation)
	}
}
