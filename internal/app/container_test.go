package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

func TestBuildContainer(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HEALTHDESK_CONFIG", filepath.Join(home, "config.yaml"))

	c, err := BuildContainer(context.Background(), false)
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	defer c.Close()

	if c.AssessmentService == nil || c.Tools == nil || c.DoctorService == nil || c.Engine == nil {
		t.Fatalf("container not fully wired: %+v", c)
	}
	if c.HistoryStore == nil {
		t.Fatal("history enabled by default but store missing")
	}
	if len(c.Tools.List()) != 4 {
		t.Errorf("expected 4 tools, got %d", len(c.Tools.List()))
	}

	if _, err := c.AssessmentService.LookupMedication(context.Background(), domain.MedicationRequest{Name: "aspirin"}); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	records, err := c.HistoryStore.Records(0, "")
	if err != nil || len(records) != 1 {
		t.Errorf("expected one recorded assessment, got %d (%v)", len(records), err)
	}
}

func TestBuildContainerRejectsBadKnowledgeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfgPath := filepath.Join(home, "config.yaml")
	t.Setenv("HEALTHDESK_CONFIG", cfgPath)

	knowledge := filepath.Join(home, "knowledge.yaml")
	if err := os.WriteFile(knowledge, []byte("severity:\n  urgent:\n    keywords: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := "knowledge:\n  file: " + knowledge + "\nhistory:\n  enabled: false\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := BuildContainer(context.Background(), false)
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	defer c.Close()

	if c.Engine.Source() != "embedded" {
		t.Errorf("invalid knowledge file should fall back to embedded tables, got %s", c.Engine.Source())
	}
	if c.HistoryStore != nil {
		t.Error("history disabled but store wired")
	}
	if c.KnowledgeErr == nil {
		t.Fatal("rejection reason not kept on container")
	}

	report, err := c.DoctorService.Run(context.Background())
	if err == nil {
		t.Fatal("doctor should fail when the configured knowledge file is rejected")
	}
	for _, check := range report.Checks {
		if check.Name == "Knowledge base" && check.Status != domain.HealthError {
			t.Errorf("knowledge check = %s (%s), want error", check.Status, check.Details)
		}
	}
}
