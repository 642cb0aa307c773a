package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

func TestRenderTextAppendsDisclaimer(t *testing.T) {
	var buf bytes.Buffer
	verdict := domain.SeverityVerdict{
		Tier:           domain.TierEmergency,
		Level:          5,
		ActionRequired: "IMMEDIATE MEDICAL ATTENTION REQUIRED",
		Emergency:      []domain.Evidence{{Symptom: "chest pain", Keyword: "chest pain", Rationale: "Possible cardiac event"}},
	}

	if err := Render(&buf, domain.OutputText, verdict, func(w io.Writer) { RenderSeverity(w, verdict) }); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Severity: EMERGENCY (level 5)", "Emergency symptoms:", "chest pain [chest pain]", domain.SafetyDisclaimer} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSONOmitsDisclaimer(t *testing.T) {
	var buf bytes.Buffer
	lookup := domain.MedicationLookup{Status: domain.LookupNotFound, Medication: "x", Message: "Information for 'x' not found in database"}

	if err := Render(&buf, domain.OutputJSON, lookup, func(w io.Writer) { RenderMedication(w, lookup) }); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Contains(buf.String(), domain.SafetyDisclaimer) {
		t.Error("json output should not carry the disclaimer")
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["status"] != "not_found" {
		t.Errorf("status = %v", decoded["status"])
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, "xml", nil, func(io.Writer) {}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRenderDurationThreshold(t *testing.T) {
	key, days := "fever", 3
	v := domain.DurationVerdict{Status: domain.DurationSeekCare, Symptom: "fever", DurationDays: 5, MatchedKey: &key, ThresholdDays: &days}

	var buf bytes.Buffer
	RenderDuration(&buf, v)
	if !strings.Contains(buf.String(), "Status: SEEK CARE") || !strings.Contains(buf.String(), "Threshold: fever (3 days)") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
