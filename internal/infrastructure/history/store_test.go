package history

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

func sampleRecords(now time.Time) []domain.AssessmentRecord {
	return []domain.AssessmentRecord{
		{ID: "1", Timestamp: now.Add(-2 * time.Hour), Kind: domain.KindSeverity, Input: "chest pain", Outcome: "IMMEDIATE MEDICAL ATTENTION", Level: "emergency"},
		{ID: "2", Timestamp: now.Add(-1 * time.Hour), Kind: domain.KindDuration, Input: "fever for 4 days", Outcome: "seek care", Level: "seek_care"},
		{ID: "3", Timestamp: now.AddDate(0, 0, -40), Kind: domain.KindMedication, Input: "aspirin", Outcome: "NSAID/Antiplatelet", Level: "success"},
	}
}

func exerciseStore(t *testing.T, store ports.HistoryRepository) {
	t.Helper()
	now := time.Now().UTC()
	for _, rec := range sampleRecords(now) {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != "2" || records[2].ID != "3" {
		t.Errorf("records not newest first: %s, %s, %s", records[0].ID, records[1].ID, records[2].ID)
	}

	limited, err := store.Records(1, "")
	if err != nil || len(limited) != 1 {
		t.Fatalf("limit not applied: %v %d", err, len(limited))
	}

	found, err := store.Records(0, "FEVER")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(found) != 1 || found[0].Kind != domain.KindDuration {
		t.Errorf("search mismatch: %+v", found)
	}

	if err := store.PruneOlderThan(30); err != nil {
		t.Fatalf("PruneOlderThan error: %v", err)
	}
	records, _ = store.Records(0, "")
	if len(records) != 2 {
		t.Errorf("expected 2 records after prune, got %d", len(records))
	}

	dest := filepath.Join(t.TempDir(), "export.jsonl")
	if err := store.ExportJSON(dest); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}
	if lines := countLines(t, dest); lines != 2 {
		t.Errorf("export has %d lines, want 2", lines)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	records, _ = store.Records(0, "")
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d", len(records))
	}
}

func TestSQLiteStore(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	defer store.Close()
	if store.Degraded() {
		t.Fatal("sqlite store unexpectedly degraded")
	}
	exerciseStore(t, store)
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, NewFileStore(filepath.Join(t.TempDir(), "history.jsonl")))
}

func TestSQLiteStoreRoundTripsTimestamp(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	defer store.Close()

	ts := time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC)
	if err := store.Save(domain.AssessmentRecord{ID: "x", Timestamp: ts, Kind: domain.KindInteraction}); err != nil {
		t.Fatal(err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if !records[0].Timestamp.Equal(ts) || records[0].Kind != domain.KindInteraction {
		t.Errorf("round trip mismatch: %+v", records[0])
	}
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	n := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		n++
	}
	return n
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	stores := map[string]func(t *testing.T) ports.HistoryRepository{
		"sqlite": func(t *testing.T) ports.HistoryRepository {
			store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
			t.Cleanup(func() { store.Close() })
			return store
		},
		"file": func(t *testing.T) ports.HistoryRepository {
			return NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))
		},
	}

	tests := []struct {
		search string
		want   int
	}{
		{search: "%", want: 1},
		{search: "50_", want: 0},
		{search: "50%", want: 1},
		{search: `\`, want: 0},
		{search: "throat", want: 1},
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			now := time.Now().UTC()
			for i, input := range []string{"50% better", "sore throat"} {
				rec := domain.AssessmentRecord{ID: string(rune('a' + i)), Timestamp: now, Kind: domain.KindSeverity, Input: input, Level: "low"}
				if err := store.Save(rec); err != nil {
					t.Fatal(err)
				}
			}
			for _, tt := range tests {
				got, err := store.Records(0, tt.search)
				if err != nil {
					t.Fatalf("Records(%q) error: %v", tt.search, err)
				}
				if len(got) != tt.want {
					t.Errorf("Records(%q) returned %d, want %d", tt.search, len(got), tt.want)
				}
			}
		})
	}
}
