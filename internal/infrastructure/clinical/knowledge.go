package clinical

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/healthdesk-go/assets"
	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/pkg/filesystem"
)

// Document is the YAML schema root of a knowledge file.
type Document struct {
	Version            string                     `yaml:"version"`
	Severity           map[string]TierSection     `yaml:"severity"`
	DurationThresholds []domain.DurationThreshold `yaml:"duration_thresholds"`
	Interactions       []domain.InteractionRecord `yaml:"interactions"`
	Medications        []domain.MedicationRecord  `yaml:"medications"`
}

// TierSection holds one tier's keywords and the guidance shown when it wins.
type TierSection struct {
	Guidance domain.TierGuidance     `yaml:"guidance"`
	Keywords []domain.SymptomKeyword `yaml:"keywords"`
}

// ParseDocument decodes and validates a knowledge file.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", domain.ErrInvalidKnowledge, err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// DefaultDocument returns the embedded knowledge tables.
func DefaultDocument() (Document, error) {
	return ParseDocument(assets.DefaultKnowledgeYAML)
}

// LoadDocument reads path, falling back to the embedded tables when the file is absent.
// The second return value reports whether the embedded tables were used.
func LoadDocument(path string) (Document, bool, error) {
	if path == "" {
		doc, err := DefaultDocument()
		return doc, true, err
	}
	data, err := os.ReadFile(filesystem.ExpandPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			doc, err := DefaultDocument()
			return doc, true, err
		}
		return Document{}, false, err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return Document{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return doc, false, nil
}

// Validate checks the structural rules a knowledge file must obey.
func (d Document) Validate() error {
	var problems []string

	for name, section := range d.Severity {
		tier, ok := domain.ParseSeverityTier(name)
		if !ok {
			problems = append(problems, fmt.Sprintf("severity: unknown tier %q", name))
			continue
		}
		if tier == domain.TierLow && len(section.Keywords) > 0 {
			problems = append(problems, "severity.low: keywords are not allowed")
		}
		for i, kw := range section.Keywords {
			if strings.TrimSpace(kw.Phrase) == "" {
				problems = append(problems, fmt.Sprintf("severity.%s.keywords[%d]: empty phrase", name, i))
			}
		}
	}

	for i, th := range d.DurationThresholds {
		if strings.TrimSpace(th.Key) == "" {
			problems = append(problems, fmt.Sprintf("duration_thresholds[%d]: empty key", i))
		}
		if th.MaxDays < 0 {
			problems = append(problems, fmt.Sprintf("duration_thresholds[%d]: max_days must be >= 0", i))
		}
	}

	seenPairs := map[pairKey]int{}
	for i, rec := range d.Interactions {
		if _, ok := domain.ParseInteractionSeverity(string(rec.Severity)); !ok {
			problems = append(problems, fmt.Sprintf("interactions[%d]: unknown severity %q", i, rec.Severity))
		}
		a, b := normalize(rec.Drugs[0]), normalize(rec.Drugs[1])
		if a == "" || b == "" {
			problems = append(problems, fmt.Sprintf("interactions[%d]: both drugs are required", i))
			continue
		}
		for _, key := range []pairKey{{a, b}, {b, a}} {
			if prev, dup := seenPairs[key]; dup {
				problems = append(problems, fmt.Sprintf("interactions[%d]: duplicates interactions[%d]", i, prev))
				break
			}
		}
		seenPairs[pairKey{a, b}] = i
	}

	seenMeds := map[string]bool{}
	for i, med := range d.Medications {
		name := normalize(med.GenericName)
		switch {
		case name == "":
			problems = append(problems, fmt.Sprintf("medications[%d]: empty generic_name", i))
		case seenMeds[name]:
			problems = append(problems, fmt.Sprintf("medications[%d]: duplicate %q", i, med.GenericName))
		}
		seenMeds[name] = true
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidKnowledge, strings.Join(problems, "; "))
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
