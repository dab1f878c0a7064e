package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/contrack/internal/ports/primary"
)

// StatsAdapter prints database statistics.
type StatsAdapter struct {
	service primary.StatsService
	out     io.Writer
}

// NewStatsAdapter creates a new StatsAdapter with the given service.
func NewStatsAdapter(service primary.StatsService, out io.Writer) *StatsAdapter {
	return &StatsAdapter{service: service, out: out}
}

// Show prints row counts and the per-category breakdown.
func (a *StatsAdapter) Show(ctx context.Context) (*primary.Stats, error) {
	stats, err := a.service.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Repositories:  %d\n", stats.Repositories)
	fmt.Fprintf(a.out, "Contributions: %d\n", stats.Contributions)
	fmt.Fprintf(a.out, "Commits:       %d\n", stats.Commits)
	fmt.Fprintf(a.out, "Agent rules:   %d\n", stats.AgentRules)
	fmt.Fprintf(a.out, "Prompts:       %d\n", stats.Prompts)

	if len(stats.Categories) > 0 {
		fmt.Fprintln(a.out)
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tCONTRIBUTIONS")
		fmt.Fprintln(w, "--------\t-------------")
		for _, c := range stats.Categories {
			fmt.Fprintf(w, "%s\t%d\n", c.Category, c.Count)
		}
		w.Flush()
	}
	return stats, nil
}
