package domain

// SeverityRequest asks for a severity classification.
type SeverityRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
}

// DurationRequest asks whether a symptom has persisted too long.
type DurationRequest struct {
	Symptom string `json:"symptom" validate:"required"`
	Days    int    `json:"duration_days" validate:"gte=0"`
}

// InteractionRequest asks for interactions between current medications and a new one.
type InteractionRequest struct {
	Current []string `json:"current_medications" validate:"dive,required"`
	New     string   `json:"new_medication" validate:"required"`
}

// MedicationRequest asks for reference data on one medication.
type MedicationRequest struct {
	Name string `json:"medication_name" validate:"required"`
}
