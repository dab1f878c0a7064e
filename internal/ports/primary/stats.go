package primary

import "context"

// StatsService defines the primary port for database statistics.
type StatsService interface {
	// GetStats returns row counts and contributions per category.
	GetStats(ctx context.Context) (*Stats, error)
}

// Stats holds database-wide counts.
type Stats struct {
	Repositories  int
	Contributions int
	Commits       int
	AgentRules    int
	Prompts       int
	Categories    []CategoryCount
}

// CategoryCount is the number of contributions in one category.
type CategoryCount struct {
	Category string
	Count    int
}
