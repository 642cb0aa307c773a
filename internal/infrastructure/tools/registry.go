package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

// Registry manages tool registration and execution.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates a new tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// NewDefaultRegistry registers the four assessment tools backed by svc.
func NewDefaultRegistry(svc Assessor) *Registry {
	r := NewRegistry()
	r.Register(NewSeverityTool(svc))
	r.Register(NewDurationTool(svc))
	r.Register(NewInteractionTool(svc))
	r.Register(NewMedicationTool(svc))
	return r
}

// Register adds a tool to the registry, replacing any tool with the same name.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, exists := r.tools[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, name)
	}
	return tool, nil
}

// List returns all registered tools sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Execute runs a tool by name with the given input.
func (r *Registry) Execute(ctx context.Context, input *Input) (*Result, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: tool input is nil", domain.ErrInvalidInput)
	}
	tool, err := r.Get(input.Name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := tool.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	result.Stats.ExecutionTime = time.Since(start)
	return result, nil
}
