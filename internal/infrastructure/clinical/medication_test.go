package clinical

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

func TestLookupMedicationIsCaseInsensitive(t *testing.T) {
	engine := newTestEngine(t)

	upper := engine.LookupMedication("IBUPROFEN")
	lower := engine.LookupMedication("ibuprofen")

	if !upper.Found() || !lower.Found() {
		t.Fatalf("expected both lookups to hit: %+v / %+v", upper, lower)
	}
	if diff := cmp.Diff(upper.Record, lower.Record); diff != "" {
		t.Errorf("records differ (-upper +lower):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Advil", "Motrin"}, lower.Record.BrandNames); diff != "" {
		t.Errorf("brand names mismatch (-want +got):\n%s", diff)
	}
	if upper.Medication != "IBUPROFEN" {
		t.Errorf("medication should echo the input, got %q", upper.Medication)
	}
}

func TestLookupMedicationRequiresExactName(t *testing.T) {
	engine := newTestEngine(t)

	for _, name := range []string{"ibuprof", "ibuprofen 200mg", "", "Advil"} {
		t.Run(name, func(t *testing.T) {
			lookup := engine.LookupMedication(name)
			if lookup.Found() || lookup.Status != domain.LookupNotFound {
				t.Fatalf("expected not_found, got %+v", lookup)
			}
			if lookup.Record != nil {
				t.Error("record should be nil")
			}
		})
	}
}

func TestLookupMedicationReturnsCopies(t *testing.T) {
	engine := newTestEngine(t)

	first := engine.LookupMedication("aspirin")
	first.Record.Warnings[0] = "tampered"

	second := engine.LookupMedication("aspirin")
	if second.Record.Warnings[0] != "Take with food" {
		t.Fatalf("table was mutated through a returned record: %v", second.Record.Warnings)
	}
}

func TestMedicationsSorted(t *testing.T) {
	engine := newTestEngine(t)

	want := []string{"Acetaminophen", "Aspirin", "Ibuprofen", "Lisinopril", "Metformin"}
	if diff := cmp.Diff(want, engine.Medications()); diff != "" {
		t.Errorf("Medications() mismatch (-want +got):\n%s", diff)
	}
}
