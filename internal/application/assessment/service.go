package assessment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/clinical"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

// Service validates assessment requests, runs them through the classifier and
// records the outcome. The classifier itself never fails; every error returned
// here wraps domain.ErrInvalidInput.
type Service struct {
	Classifier   ports.Classifier
	HistoryStore ports.HistoryRepository
	Logger       ports.Logger

	// Now is overridable in tests.
	Now func() time.Time
}

var validate = validator.New()

// AssessSeverity classifies a list of symptoms.
func (s *Service) AssessSeverity(ctx context.Context, req domain.SeverityRequest) (domain.SeverityVerdict, error) {
	if err := s.ready(); err != nil {
		return domain.SeverityVerdict{}, err
	}
	req.Symptoms = clinical.CleanList(req.Symptoms)
	if err := check(req); err != nil {
		return domain.SeverityVerdict{}, fmt.Errorf("assess severity: %w", err)
	}

	verdict := s.Classifier.ClassifySeverity(req.Symptoms)
	s.Logger.Info("severity classified", map[string]interface{}{
		"symptoms": len(req.Symptoms),
		"tier":     verdict.Tier,
	})
	s.record(ctx, domain.KindSeverity, strings.Join(req.Symptoms, ", "), verdict.ActionRequired, string(verdict.Tier))
	return verdict, nil
}

// AssessDuration checks whether a symptom has persisted past its threshold.
func (s *Service) AssessDuration(ctx context.Context, req domain.DurationRequest) (domain.DurationVerdict, error) {
	if err := s.ready(); err != nil {
		return domain.DurationVerdict{}, err
	}
	req.Symptom = strings.TrimSpace(req.Symptom)
	if err := check(req); err != nil {
		return domain.DurationVerdict{}, fmt.Errorf("assess duration: %w", err)
	}

	verdict := s.Classifier.EvaluateDuration(req.Symptom, req.Days)
	s.Logger.Info("duration evaluated", map[string]interface{}{
		"symptom": req.Symptom,
		"days":    req.Days,
		"status":  verdict.Status,
	})
	s.record(ctx, domain.KindDuration, req.Symptom+" for "+strconv.Itoa(req.Days)+" days", verdict.Message, string(verdict.Status))
	return verdict, nil
}

// CheckInteractions reports known interactions between current medications and a new one.
func (s *Service) CheckInteractions(ctx context.Context, req domain.InteractionRequest) (domain.InteractionReport, error) {
	if err := s.ready(); err != nil {
		return domain.InteractionReport{}, err
	}
	req.Current = clinical.CleanList(req.Current)
	req.New = strings.TrimSpace(req.New)
	if err := check(req); err != nil {
		return domain.InteractionReport{}, fmt.Errorf("check interactions: %w", err)
	}

	report := s.Classifier.CheckInteractions(req.Current, req.New)
	s.Logger.Info("interactions checked", map[string]interface{}{
		"current": len(req.Current),
		"new":     req.New,
		"found":   report.Count,
	})
	level := string(report.MostSevere())
	if level == "" {
		level = "none"
	}
	s.record(ctx, domain.KindInteraction, req.New+" with "+strings.Join(req.Current, ", "), report.Message, level)
	return report, nil
}

// LookupMedication returns reference data for one medication. A miss is not an error.
func (s *Service) LookupMedication(ctx context.Context, req domain.MedicationRequest) (domain.MedicationLookup, error) {
	if err := s.ready(); err != nil {
		return domain.MedicationLookup{}, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := check(req); err != nil {
		return domain.MedicationLookup{}, fmt.Errorf("lookup medication: %w", err)
	}

	lookup := s.Classifier.LookupMedication(req.Name)
	s.Logger.Debug("medication looked up", map[string]interface{}{
		"name":   req.Name,
		"status": lookup.Status,
	})
	outcome := lookup.Message
	if lookup.Found() {
		outcome = lookup.Record.DrugClass
	}
	s.record(ctx, domain.KindMedication, req.Name, outcome, string(lookup.Status))
	return lookup, nil
}

func (s *Service) ready() error {
	if s.Classifier == nil || s.Logger == nil {
		return errors.New("assessment.Service dependencies not satisfied")
	}
	return nil
}

// record saves history best-effort; a storage failure never fails the assessment.
func (s *Service) record(ctx context.Context, kind domain.AssessmentKind, input, outcome, level string) {
	if s.HistoryStore == nil || ctx.Err() != nil {
		return
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	rec := domain.AssessmentRecord{
		ID:        uuid.NewString(),
		Timestamp: now().UTC(),
		Kind:      kind,
		Input:     input,
		Outcome:   outcome,
		Level:     level,
	}
	if err := s.HistoryStore.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{
			"kind":  kind,
			"error": err.Error(),
		})
	}
}

func check(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			var parts []string
			for _, fe := range fieldErrs {
				parts = append(parts, describe(fe))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, "; "))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must have at least " + fe.Param() + " entry"
	case "gte":
		return field + " must be >= " + fe.Param()
	default:
		return field + " failed " + fe.Tag()
	}
}
