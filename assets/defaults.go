package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DefaultKnowledgeYAML contains the embedded symptom, duration, interaction and medication tables.
//
//go:embed defaults/knowledge.yaml
var DefaultKnowledgeYAML []byte
