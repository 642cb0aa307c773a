package doctor

import (
	"context"
	"fmt"
	"os"

	configapp "github.com/doeshing/healthdesk-go/internal/application/config"
	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/pkg/filesystem"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Knowledge      ports.KnowledgeBase
	HistoryStore   ports.HistoryRepository
	// KnowledgeErr is the reason a configured knowledge file was rejected.
	KnowledgeErr   error
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	if s.ConfigProvider == nil {
		checks = append(checks, fail("Config file", "config provider not initialized"))
		return domain.HealthReport{Checks: checks}, fmt.Errorf("config provider not initialized")
	}
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, s.knowledgeCheck(cfg.Knowledge))
	checks = append(checks, s.historyCheck(cfg.History))

	report := domain.HealthReport{Checks: checks}
	if !report.Healthy() {
		return report, fmt.Errorf("one or more checks failed")
	}
	return report, nil
}

func (s *Service) knowledgeCheck(settings domain.KnowledgeSettings) domain.HealthCheck {
	if s.Knowledge == nil {
		return fail("Knowledge base", "tables not loaded")
	}
	stats := s.Knowledge.Stats()
	details := fmt.Sprintf("%s: %d keywords, %d thresholds, %d interactions, %d medications",
		s.Knowledge.Source(),
		stats["symptom_keywords"],
		stats["duration_thresholds"],
		stats["interactions"],
		stats["medications"])
	if stats["symptom_keywords"] == 0 {
		return warn("Knowledge base", details)
	}
	if settings.File == "" {
		return ok("Knowledge base", details)
	}
	path := filesystem.ExpandPath(settings.File)
	if _, err := os.Stat(path); err != nil {
		return ok("Knowledge base", details+" (custom file not found, using embedded tables)")
	}
	if s.KnowledgeErr != nil {
		return fail("Knowledge base", fmt.Sprintf("%s rejected, using embedded tables: %v", path, s.KnowledgeErr))
	}
	if s.Knowledge.Source() != path {
		return warn("Knowledge base", details+fmt.Sprintf(" (%s not in use)", path))
	}
	return ok("Knowledge base", details)
}

func (s *Service) historyCheck(settings domain.HistorySettings) domain.HealthCheck {
	if !settings.Enabled {
		return warn("History", "disabled in config")
	}
	if s.HistoryStore == nil {
		return warn("History", "store not initialized")
	}
	if _, err := s.HistoryStore.Records(1, ""); err != nil {
		return fail("History", fmt.Sprintf("%s unreadable: %v", s.HistoryStore.Path(), err))
	}
	return ok("History", fmt.Sprintf("%s (retention %d days)", s.HistoryStore.Path(), settings.RetentionDays))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
