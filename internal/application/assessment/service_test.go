package assessment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/clinical"
	"github.com/doeshing/healthdesk-go/internal/pkg/logger"
)

func newService(t *testing.T, store *stubHistory) *Service {
	t.Helper()
	engine, err := clinical.Default()
	if err != nil {
		t.Fatalf("clinical.Default() error: %v", err)
	}
	svc := &Service{
		Classifier: engine,
		Logger:     logger.NewNop(),
		Now:        func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
	if store != nil {
		svc.HistoryStore = store
	}
	return svc
}

func TestAssessSeverityRecordsHistory(t *testing.T) {
	store := &stubHistory{}
	svc := newService(t, store)

	verdict, err := svc.AssessSeverity(context.Background(), domain.SeverityRequest{
		Symptoms: []string{" chest pain ", "", "cough"},
	})
	if err != nil {
		t.Fatalf("AssessSeverity() error = %v", err)
	}
	if verdict.Tier != domain.TierEmergency {
		t.Fatalf("tier = %s, want emergency", verdict.Tier)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one history record, got %d", len(store.saved))
	}
	rec := store.saved[0]
	if rec.Kind != domain.KindSeverity || rec.Level != "emergency" || rec.Input != "chest pain, cough" {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.ID == "" || !rec.Timestamp.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("record metadata not populated: %+v", rec)
	}
}

func TestAssessSeverityRejectsEmptyList(t *testing.T) {
	svc := newService(t, nil)

	for _, symptoms := range [][]string{nil, {}, {" ", ""}} {
		_, err := svc.AssessSeverity(context.Background(), domain.SeverityRequest{Symptoms: symptoms})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("symptoms %q: expected ErrInvalidInput, got %v", symptoms, err)
		}
	}
}

func TestAssessDurationValidation(t *testing.T) {
	svc := newService(t, nil)

	tests := []struct {
		name    string
		req     domain.DurationRequest
		wantErr bool
		status  domain.DurationStatus
	}{
		{name: "seek care", req: domain.DurationRequest{Symptom: "fever", Days: 4}, status: domain.DurationSeekCare},
		{name: "monitor", req: domain.DurationRequest{Symptom: "fever", Days: 3}, status: domain.DurationMonitor},
		{name: "zero days", req: domain.DurationRequest{Symptom: "cough", Days: 0}, status: domain.DurationMonitor},
		{name: "negative days", req: domain.DurationRequest{Symptom: "fever", Days: -1}, wantErr: true},
		{name: "blank symptom", req: domain.DurationRequest{Symptom: "  ", Days: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := svc.AssessDuration(context.Background(), tt.req)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if verdict.Status != tt.status {
				t.Errorf("status = %s, want %s", verdict.Status, tt.status)
			}
		})
	}
}

func TestCheckInteractionsService(t *testing.T) {
	store := &stubHistory{}
	svc := newService(t, store)

	report, err := svc.CheckInteractions(context.Background(), domain.InteractionRequest{
		Current: []string{"Warfarin", " "},
		New:     "Aspirin",
	})
	if err != nil {
		t.Fatalf("CheckInteractions() error = %v", err)
	}
	if report.Count != 1 {
		t.Fatalf("count = %d, want 1", report.Count)
	}
	if store.saved[0].Level != "severe" {
		t.Errorf("level = %q, want severe", store.saved[0].Level)
	}

	if _, err := svc.CheckInteractions(context.Background(), domain.InteractionRequest{Current: []string{"a"}}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing new medication, got %v", err)
	}
}

func TestCheckInteractionsWithoutCurrentMedications(t *testing.T) {
	svc := newService(t, nil)

	report, err := svc.CheckInteractions(context.Background(), domain.InteractionRequest{New: "Aspirin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.HasInteractions {
		t.Errorf("expected empty report, got %+v", report)
	}
}

func TestLookupMedicationNotFoundIsNotAnError(t *testing.T) {
	store := &stubHistory{}
	svc := newService(t, store)

	lookup, err := svc.LookupMedication(context.Background(), domain.MedicationRequest{Name: "ibuprof"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lookup.Found() {
		t.Fatal("expected not found")
	}
	if store.saved[0].Level != string(domain.LookupNotFound) {
		t.Errorf("level = %q", store.saved[0].Level)
	}
}

func TestHistoryFailureDoesNotFailAssessment(t *testing.T) {
	svc := newService(t, &stubHistory{err: errors.New("disk full")})

	if _, err := svc.LookupMedication(context.Background(), domain.MedicationRequest{Name: "aspirin"}); err != nil {
		t.Fatalf("history failure leaked: %v", err)
	}
}

func TestServiceRequiresDependencies(t *testing.T) {
	svc := &Service{}
	if _, err := svc.AssessSeverity(context.Background(), domain.SeverityRequest{Symptoms: []string{"cough"}}); err == nil {
		t.Fatal("expected dependency error")
	}
}

type stubHistory struct {
	saved []domain.AssessmentRecord
	err   error
}

func (s *stubHistory) Save(rec domain.AssessmentRecord) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, rec)
	return nil
}

func (s *stubHistory) Records(int, string) ([]domain.AssessmentRecord, error) { return s.saved, nil }
func (s *stubHistory) Clear() error                                          { s.saved = nil; return nil }
func (s *stubHistory) ExportJSON(string) error                               { return nil }
func (s *stubHistory) PruneOlderThan(int) error                              { return nil }
func (s *stubHistory) Path() string                                          { return "stub" }
