package filter

import (
	"sort"

	"github.com/event-dashboard/internal/domain"
)

// Index - aggregates of an unfiltered dataset, built once per load
type Index struct {
	Total        int            `json:"total"`
	Types        []string       `json:"types"`
	StatusCounts map[string]int `json:"status_counts"`
	TypeCounts   map[string]int `json:"type_counts"`
}

// BuildIndex collects the distinct, sorted type values and per-value counts.
// Empty values are not offered as filter options.
func BuildIndex[T Record](records []T) Index {
	idx := Index{
		Total:        len(records),
		Types:        []string{},
		StatusCounts: make(map[string]int),
		TypeCounts:   make(map[string]int),
	}

	for _, r := range records {
		if s := r.StatusValue(); s != "" {
			idx.StatusCounts[s]++
		}
		for _, t := range r.TypeValues() {
			if t == "" {
				continue
			}
			if _, seen := idx.TypeCounts[t]; !seen {
				idx.Types = append(idx.Types, t)
			}
			idx.TypeCounts[t]++
		}
	}

	sort.Strings(idx.Types)
	return idx
}

// OutageStats mirrors the outage dashboard counters.
type OutageStats struct {
	Total             int `json:"total"`
	Active            int `json:"active"`
	Restored          int `json:"restored"`
	Scheduled         int `json:"scheduled"`
	AffectedCustomers int `json:"affected_customers"`
}

// SummarizeOutages counts outages by status and sums affected customers.
// Outages without a customer count contribute zero.
func SummarizeOutages(outages []domain.Outage) OutageStats {
	stats := OutageStats{Total: len(outages)}
	for _, o := range outages {
		switch o.Status {
		case domain.StatusActive:
			stats.Active++
		case domain.StatusRestored:
			stats.Restored++
		case domain.StatusScheduled:
			stats.Scheduled++
		}
		if o.AffectedCustomers != nil {
			stats.AffectedCustomers += *o.AffectedCustomers
		}
	}
	return stats
}
