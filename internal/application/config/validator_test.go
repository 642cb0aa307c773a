package config

import (
	"testing"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		History:             domain.HistorySettings{Enabled: true, RetentionDays: 30},
		Server:              domain.ServerSettings{Addr: "127.0.0.1:8088", ReadTimeout: "30s", WriteTimeout: "30s"},
		Output:              domain.OutputSettings{Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "json output", mutate: func(c *domain.Config) { c.Output.Format = "JSON" }},
		{name: "missing addr", mutate: func(c *domain.Config) { c.Server.Addr = "" }, wantErr: true},
		{name: "bad read timeout", mutate: func(c *domain.Config) { c.Server.ReadTimeout = "soon" }, wantErr: true},
		{name: "bad write timeout", mutate: func(c *domain.Config) { c.Server.WriteTimeout = "" }, wantErr: true},
		{name: "negative retention", mutate: func(c *domain.Config) { c.History.RetentionDays = -1 }, wantErr: true},
		{name: "unknown format", mutate: func(c *domain.Config) { c.Output.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
