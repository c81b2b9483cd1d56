// Package pipeline derives dashboard statistics and Kanban groupings from
// an opportunity list. Everything here is pure computation over the input
// slice, no I/O and no store access.
package pipeline

import (
	"github.com/nukleohub/commercial/internal/model"
)

// Stats is the aggregate view of an opportunity list. OpportunitiesByStage
// always carries all six stages, zero-valued when a stage is empty.
type Stats struct {
	TotalOpportunities   int                 `json:"totalOpportunities"`
	TotalAmount          float64             `json:"totalAmount"`
	WonOpportunities     int                 `json:"wonOpportunities"`
	WonAmount            float64             `json:"wonAmount"`
	ConversionRate       float64             `json:"conversionRate"`
	OpportunitiesByStage map[model.Stage]int `json:"opportunitiesByStage"`
}

// ComputeStats aggregates opportunities into dashboard statistics.
// Conversion rate is the Won share of the whole list in percent and stays 0
// for an empty list.
func ComputeStats(opportunities []*model.Opportunity) Stats {
	stats := Stats{OpportunitiesByStage: make(map[model.Stage]int, len(model.Stages()))}
	for _, stage := range model.Stages() {
		stats.OpportunitiesByStage[stage] = 0
	}

	for _, o := range opportunities {
		stats.TotalOpportunities++
		stats.TotalAmount += o.Amount

		if o.Stage == model.StageWon {
			stats.WonOpportunities++
			stats.WonAmount += o.Amount
		}

		if _, ok := stats.OpportunitiesByStage[o.Stage]; ok {
			stats.OpportunitiesByStage[o.Stage]++
		}
	}

	if stats.TotalOpportunities > 0 {
		stats.ConversionRate = float64(stats.WonOpportunities) / float64(stats.TotalOpportunities) * 100
	}
	return stats
}

// Column is a single Kanban lane: one stage, its opportunities and their
// amount subtotal
type Column struct {
	Stage         model.Stage          `json:"stage"`
	Opportunities []*model.Opportunity `json:"opportunities"`
	TotalAmount   float64              `json:"totalAmount"`
}

// GroupByStage partitions opportunities into six columns in fixed display
// order: New, Qualification, Proposal, Negotiation, Won, Lost. Input order
// is preserved within a column. Opportunities carrying an unknown stage are
// skipped.
func GroupByStage(opportunities []*model.Opportunity) []Column {
	stages := model.Stages()

	index := make(map[model.Stage]int, len(stages))
	columns := make([]Column, len(stages))
	for i, stage := range stages {
		index[stage] = i
		columns[i] = Column{Stage: stage, Opportunities: make([]*model.Opportunity, 0)}
	}

	for _, o := range opportunities {
		i, ok := index[o.Stage]
		if !ok {
			continue
		}
		columns[i].Opportunities = append(columns[i].Opportunities, o)
		columns[i].TotalAmount += o.Amount
	}
	return columns
}
