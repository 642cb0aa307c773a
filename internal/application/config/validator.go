package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateServer(cfg.Server); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	return validateOutput(cfg.Output)
}

func validateServer(server domain.ServerSettings) error {
	if server.Addr == "" {
		return fmt.Errorf("server.addr must be set")
	}
	if _, err := time.ParseDuration(server.ReadTimeout); err != nil {
		return fmt.Errorf("server.read_timeout invalid: %w", err)
	}
	if _, err := time.ParseDuration(server.WriteTimeout); err != nil {
		return fmt.Errorf("server.write_timeout invalid: %w", err)
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must be >= 0")
	}
	return nil
}

func validateOutput(output domain.OutputSettings) error {
	switch strings.ToLower(output.Format) {
	case domain.OutputText, domain.OutputJSON:
		return nil
	default:
		return fmt.Errorf("output.format must be text|json, got %s", output.Format)
	}
}
