package helpers

import (
	"sort"
)

// UsageStatistic is how often a value occurred in the history.
type UsageStatistic struct {
	Name  string
	Count int
}

// CalculateTopUsage returns the top N most frequent values
// If limit is 0 or negative, returns all values
func CalculateTopUsage(frequency map[string]int, limit int) []UsageStatistic {
	stats := convertFrequencyMapToStatistics(frequency)
	sortStatisticsByFrequency(stats)

	if shouldLimitResults(limit, len(stats)) {
		return stats[:limit]
	}
	return stats
}

func convertFrequencyMapToStatistics(frequency map[string]int) []UsageStatistic {
	stats := make([]UsageStatistic, 0, len(frequency))
	for name, count := range frequency {
		stats = append(stats, UsageStatistic{Name: name, Count: count})
	}
	return stats
}

// sortStatisticsByFrequency sorts by count (descending) then by name (ascending)
func sortStatisticsByFrequency(stats []UsageStatistic) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].Count > stats[j].Count
	})
}

func shouldLimitResults(limit int, actualLength int) bool {
	return limit > 0 && actualLength > limit
}

// CalculateSuccessRate calculates the success rate as a percentage
func CalculateSuccessRate(successfulCount int, totalCount int) float64 {
	if totalCount == 0 {
		return 0.0
	}
	return float64(successfulCount) / float64(totalCount) * 100.0
}
