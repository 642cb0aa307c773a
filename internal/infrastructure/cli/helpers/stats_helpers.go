package helpers

import (
	"sort"

	"github.com/doeshing/healthdesk-go/internal/domain"
)

// Statistic is a label and how often it occurred
type Statistic struct {
	Label string
	Count int
}

// HistoryStatistics summarises a set of assessment records
type HistoryStatistics struct {
	Total    int
	ByKind   []Statistic
	ByLevel  []Statistic
	TopInput []Statistic
}

// AnalyzeHistory counts records per kind, per outcome level and per input
func AnalyzeHistory(records []domain.AssessmentRecord, topN int) HistoryStatistics {
	kinds := make(map[string]int)
	levels := make(map[string]int)
	inputs := make(map[string]int)

	for _, rec := range records {
		kinds[string(rec.Kind)]++
		levels[rec.Level]++
		inputs[rec.Input]++
	}

	return HistoryStatistics{
		Total:    len(records),
		ByKind:   RankFrequencies(kinds, 0),
		ByLevel:  RankFrequencies(levels, 0),
		TopInput: RankFrequencies(inputs, topN),
	}
}

// RankFrequencies returns the top N labels by count; limit <= 0 returns all
func RankFrequencies(frequency map[string]int, limit int) []Statistic {
	stats := make([]Statistic, 0, len(frequency))
	for label, count := range frequency {
		stats = append(stats, Statistic{Label: label, Count: count})
	}

	// count descending, then label ascending
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Label < stats[j].Label
		}
		return stats[i].Count > stats[j].Count
	})

	if limit > 0 && len(stats) > limit {
		return stats[:limit]
	}
	return stats
}

// Percentage returns part/total as a percentage, 0 when total is 0
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(part) / float64(total) * 100.0
}
