package app

import (
	"context"

	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	statsRepo secondary.StatsRepository
}

// NewStatsService creates a new StatsService with injected dependencies.
func NewStatsService(statsRepo secondary.StatsRepository) *StatsServiceImpl {
	return &StatsServiceImpl{statsRepo: statsRepo}
}

// GetStats returns row counts and contributions per category.
func (s *StatsServiceImpl) GetStats(ctx context.Context) (*primary.Stats, error) {
	record, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to read statistics", err)
	}

	stats := &primary.Stats{
		Repositories:  record.Repositories,
		Contributions: record.Contributions,
		Commits:       record.Commits,
		AgentRules:    record.AgentRules,
		Prompts:       record.Prompts,
		Categories:    make([]primary.CategoryCount, len(record.Categories)),
	}
	for i, c := range record.Categories {
		stats.Categories[i] = primary.CategoryCount{Category: c.Category, Count: c.Count}
	}
	return stats, nil
}

// Ensure StatsServiceImpl implements the interface
var _ primary.StatsService = (*StatsServiceImpl)(nil)
