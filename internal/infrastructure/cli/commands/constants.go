package commands

import "github.com/doeshing/healthdesk-go/internal/domain"

// CLI-specific constants
const (
	// DefaultEditorCommand is the default editor command
	DefaultEditorCommand = "vi"

	DefaultHistoryLimit       = domain.DefaultHistoryLimit
	DefaultHistorySearchLimit = domain.DefaultHistorySearchLimit
	DefaultHistoryRetainDays  = domain.DefaultHistoryRetainDays
	MaxHistoryAnalysisRecords = domain.MaxHistoryAnalysisRecords
	TimestampFormat           = domain.TimestampFormat
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable (is history.enabled false?)"
	ErrAssessmentUnavailable    = "assessment service unavailable"
	ErrKeyRequired              = "--key is required"
	ErrQueryRequired            = "--query required"
	ErrInvalidRetainDays        = "--days must be > 0"
	ErrNewMedicationRequired    = "--new is required"
	ErrDaysRequired             = "--days is required"
	ErrMedicationNameRequired   = "medication name required (or --list)"
	ErrKnowledgeBaseUnavailable = "knowledge base unavailable"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgHistoryCleared           = "History cleared."
	MsgClearCancelled           = "Clear cancelled."
	MsgInitCancelled            = "Init cancelled."
)
