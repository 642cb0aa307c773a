package app

import (
	"context"
	"fmt"

	"github.com/doeshing/healthdesk-go/internal/application/assessment"
	"github.com/doeshing/healthdesk-go/internal/application/doctor"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/clinical"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/config"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/history"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/tools"
	"github.com/doeshing/healthdesk-go/internal/pkg/logger"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config            ports.ConfigProvider
	ConfigLoader      *config.FileLoader
	Engine            *clinical.Engine
	AssessmentService *assessment.Service
	Tools             *tools.Registry
	DoctorService     *doctor.Service
	HistoryStore      ports.HistoryRepository
	Logger            ports.Logger
	OutputFormat      string
	// KnowledgeErr holds the load error when the configured knowledge file was rejected.
	KnowledgeErr      error

	closers []func() error
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	engine, knowledgeErr := clinical.Load(cfg.Knowledge.File)
	if knowledgeErr != nil {
		log.Warn("knowledge file rejected, using embedded tables", map[string]interface{}{
			"file":  cfg.Knowledge.File,
			"error": knowledgeErr.Error(),
		})
		engine, err = clinical.Default()
		if err != nil {
			return nil, fmt.Errorf("load embedded knowledge: %w", err)
		}
	}

	c := &Container{
		Config:       cfgLoader,
		ConfigLoader: cfgLoader,
		Engine:       engine,
		Logger:       log,
		OutputFormat: cfg.Output.Format,
		KnowledgeErr: knowledgeErr,
	}

	if cfg.History.Enabled {
		store := history.NewSQLiteStore(cfg.History.Path)
		if store.Degraded() {
			log.Warn("sqlite unavailable, history falls back to jsonl", map[string]interface{}{"path": store.Path()})
		}
		if cfg.History.RetentionDays > 0 {
			if err := store.PruneOlderThan(cfg.History.RetentionDays); err != nil {
				log.Warn("history prune failed", map[string]interface{}{"error": err.Error()})
			}
		}
		c.HistoryStore = store
		c.closers = append(c.closers, store.Close)
	}

	c.AssessmentService = &assessment.Service{
		Classifier:   engine,
		HistoryStore: c.HistoryStore,
		Logger:       log,
	}
	c.Tools = tools.NewDefaultRegistry(c.AssessmentService)
	c.DoctorService = &doctor.Service{
		ConfigProvider: cfgLoader,
		Knowledge:      engine,
		HistoryStore:   c.HistoryStore,
		KnowledgeErr:   knowledgeErr,
	}

	return c, nil
}

// Close releases resources held by adapters.
func (c *Container) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
