package domain

// DurationStatus is the outcome of a duration evaluation.
type DurationStatus string

const (
	DurationSeekCare DurationStatus = "seek_care"
	DurationMonitor  DurationStatus = "monitor"
)

// DurationThreshold maps a symptom substring to the longest acceptable run in days.
type DurationThreshold struct {
	Key     string `yaml:"key" json:"key"`
	MaxDays int    `yaml:"max_days" json:"max_days"`
}

// DurationVerdict reports whether a symptom has lasted long enough to warrant care.
// MatchedKey and ThresholdDays are nil when no threshold matched.
type DurationVerdict struct {
	Status         DurationStatus `json:"status"`
	Symptom        string         `json:"symptom"`
	DurationDays   int            `json:"duration_days"`
	MatchedKey     *string        `json:"matched_key,omitempty"`
	ThresholdDays  *int           `json:"threshold_days,omitempty"`
	Message        string         `json:"message"`
	Recommendation string         `json:"recommendation"`
}

// SeekCare reports whether the verdict recommends care.
func (v DurationVerdict) SeekCare() bool {
	return v.Status == DurationSeekCare
}
