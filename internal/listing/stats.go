package listing

import (
	"sort"

	"nicaris/backoffice/internal/models"
)

// ComputeStats summarizes a decoded snapshot for the dashboard cards.
// Records without a price are excluded from the average rather than
// counted as zero.
func ComputeStats(props []models.Property) models.DashboardStats {
	stats := models.DashboardStats{
		TotalProperties: len(props),
		ByType:          make(map[string]int),
		ByStatus:        make(map[string]int),
	}

	var priced int
	var sum float64
	for _, p := range props {
		stats.ByType[p.PropertyType]++
		stats.ByStatus[p.Status]++
		if p.Price != nil {
			priced++
			sum += *p.Price
		}
	}
	if priced > 0 {
		stats.AveragePrice = sum / float64(priced)
	}

	recent := make([]models.Property, len(props))
	copy(recent, props)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.Recent = recent

	return stats
}
