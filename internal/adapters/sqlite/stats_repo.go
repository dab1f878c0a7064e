package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/contrack/internal/ports/secondary"
)

// UncategorizedLabel names the bucket for contributions without a category.
const UncategorizedLabel = "Uncategorized"

// StatsRepository implements secondary.StatsRepository with SQLite.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new SQLite stats repository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStats counts rows in every table and groups contributions by category.
func (r *StatsRepository) GetStats(ctx context.Context) (*secondary.StatsRecord, error) {
	stats := &secondary.StatsRecord{}

	err := r.db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM repositories),
		(SELECT COUNT(*) FROM contributions),
		(SELECT COUNT(*) FROM commits),
		(SELECT COUNT(*) FROM agent_rules),
		(SELECT COUNT(*) FROM prompts)`,
	).Scan(&stats.Repositories, &stats.Contributions, &stats.Commits, &stats.AgentRules, &stats.Prompts)
	if err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT COALESCE(NULLIF(category, ''), ?) AS bucket, COUNT(*) AS n
		FROM contributions GROUP BY bucket ORDER BY n DESC, bucket ASC`, UncategorizedLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c secondary.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		stats.Categories = append(stats.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	return stats, nil
}

var _ secondary.StatsRepository = (*StatsRepository)(nil)
