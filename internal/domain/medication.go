package domain

// MedicationRecord is static reference data for one medication.
type MedicationRecord struct {
	GenericName       string   `yaml:"generic_name" json:"generic_name"`
	BrandNames        []string `yaml:"brand_names" json:"brand_names"`
	DrugClass         string   `yaml:"drug_class" json:"drug_class"`
	CommonUses        []string `yaml:"common_uses" json:"common_uses"`
	CommonSideEffects []string `yaml:"common_side_effects" json:"common_side_effects"`
	Warnings          []string `yaml:"warnings" json:"warnings"`
}

// LookupStatus reports whether a medication lookup hit the table.
type LookupStatus string

const (
	LookupFound    LookupStatus = "success"
	LookupNotFound LookupStatus = "not_found"
)

// MedicationLookup is the result of a lookup. Record is nil when Status is not_found.
type MedicationLookup struct {
	Status     LookupStatus      `json:"status"`
	Medication string            `json:"medication"`
	Record     *MedicationRecord `json:"record,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// Found reports whether the lookup matched a record.
func (l MedicationLookup) Found() bool {
	return l.Status == LookupFound && l.Record != nil
}
