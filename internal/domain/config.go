package domain

// Config mirrors ~/.healthdesk/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version" json:"config_format_version"`
	Knowledge           KnowledgeSettings `yaml:"knowledge" json:"knowledge"`
	History             HistorySettings   `yaml:"history" json:"history"`
	Server              ServerSettings    `yaml:"server" json:"server"`
	Output              OutputSettings    `yaml:"output" json:"output"`
}

// KnowledgeSettings points at an optional override of the embedded tables.
type KnowledgeSettings struct {
	File string `yaml:"file" json:"file"`
}

// HistorySettings controls assessment history persistence.
type HistorySettings struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	RetentionDays int    `yaml:"retention_days" json:"retention_days"`
	Path          string `yaml:"path" json:"path"`
}

// ServerSettings configures the HTTP adapter.
type ServerSettings struct {
	Addr         string `yaml:"addr" json:"addr"`
	ReadTimeout  string `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout" json:"write_timeout"`
}

// OutputSettings selects how CLI results are rendered.
type OutputSettings struct {
	Format string `yaml:"format" json:"format"`
}

const (
	OutputText = "text"
	OutputJSON = "json"
)
