package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
	// DefaultHistoryRetainDays is the default number of days to retain history
	DefaultHistoryRetainDays = 30
	// MaxHistoryAnalysisRecords is the maximum number of records to analyze
	MaxHistoryAnalysisRecords = 1000
)

// Server constants
const (
	DefaultServerAddr    = "127.0.0.1:8088"
	DefaultReadTimeout   = 30 * time.Second
	DefaultWriteTimeout  = 30 * time.Second
	DefaultShutdownGrace = 10 * time.Second
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)

// SafetyDisclaimer is appended to every rendered result. It is never part of core output.
const SafetyDisclaimer = "This is general information, not medical advice. " +
	"Consult a healthcare professional, and call emergency services if you are in danger."
