package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/tools"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type toolDescriptor struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Schema      *tools.Schema `json:"schema"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeData(w, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"version":   s.opts.Version,
	})
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	registered := s.registry.List()
	out := make([]toolDescriptor, 0, len(registered))
	for _, tool := range registered {
		out = append(out, toolDescriptor{
			Name:        tool.Name(),
			Description: tool.Description(),
			Schema:      tool.Schema(),
		})
	}
	writeData(w, out)
}

func (s *Server) handleExecuteTool(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	if !decode(w, r, &body) {
		return
	}
	input := &tools.Input{Name: mux.Vars(r)["name"], Data: body.Data}
	if input.Data == nil {
		input.Data = map[string]interface{}{}
	}

	result, err := s.registry.Execute(r.Context(), input)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}

func (s *Server) handleSeverity(w http.ResponseWriter, r *http.Request) {
	var req domain.SeverityRequest
	if !decode(w, r, &req) {
		return
	}
	verdict, err := s.assessor.AssessSeverity(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, verdict)
}

func (s *Server) handleDuration(w http.ResponseWriter, r *http.Request) {
	var req domain.DurationRequest
	if !decode(w, r, &req) {
		return
	}
	verdict, err := s.assessor.AssessDuration(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, verdict)
}

func (s *Server) handleInteractions(w http.ResponseWriter, r *http.Request) {
	var req domain.InteractionRequest
	if !decode(w, r, &req) {
		return
	}
	report, err := s.assessor.CheckInteractions(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, report)
}

func (s *Server) handleMedication(w http.ResponseWriter, r *http.Request) {
	req := domain.MedicationRequest{Name: mux.Vars(r)["name"]}
	lookup, err := s.assessor.LookupMedication(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, lookup)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", err, map[string]interface{}{"path": r.URL.Path})
	}
	writeError(w, status, err.Error())
}

// decode reads a JSON body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON payload: %v", err))
		return false
	}
	return true
}
