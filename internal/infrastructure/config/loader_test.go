package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Addr != domain.DefaultServerAddr {
		t.Errorf("server.addr = %q", cfg.Server.Addr)
	}
	if !cfg.History.Enabled || cfg.History.RetentionDays != 30 {
		t.Errorf("history defaults = %+v", cfg.History)
	}
	if cfg.Output.Format != domain.OutputText {
		t.Errorf("output.format = %q", cfg.Output.Format)
	}
	if !strings.HasSuffix(cfg.Knowledge.File, "knowledge.yaml") {
		t.Errorf("knowledge.file = %q", cfg.Knowledge.File)
	}
}

func TestLoadHydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history:\n  enabled: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.History.Enabled {
		t.Error("history.enabled should be false")
	}
	if cfg.Server.Addr == "" || cfg.Output.Format == "" || cfg.Server.ReadTimeout == "" {
		t.Errorf("defaults not hydrated: %+v", cfg)
	}
}

func TestSaveBackupReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := DefaultConfig()
	cfg.Output.Format = domain.OutputJSON
	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	backup, err := loader.Backup()
	if err != nil {
		t.Fatalf("Backup error: %v", err)
	}
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("backup missing: %v", err)
	}

	reset, err := loader.Reset()
	if err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if reset.Output.Format != domain.OutputText {
		t.Errorf("reset did not restore defaults: %+v", reset.Output)
	}
}

func TestResolvePathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	t.Setenv(EnvConfigPath, path)

	if got := NewFileLoader("").Path(); got != path {
		t.Errorf("Path() = %q, want %q", got, path)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}
