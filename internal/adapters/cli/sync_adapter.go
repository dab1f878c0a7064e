package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/contrack/internal/core/commit"
	"github.com/example/contrack/internal/ports/primary"
)

// SyncAdapter translates the update command to SyncService calls.
type SyncAdapter struct {
	service primary.SyncService
	out     io.Writer
}

// NewSyncAdapter creates a new SyncAdapter with the given service.
func NewSyncAdapter(service primary.SyncService, out io.Writer) *SyncAdapter {
	return &SyncAdapter{
		service: service,
		out:     out,
	}
}

// Synchronize runs a sync and prints one line per referenced hash.
func (a *SyncAdapter) Synchronize(ctx context.Context, req primary.SyncRequest) (*primary.SyncReport, error) {
	report, err := a.service.Synchronize(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Synchronizing %s\n", report.Repository.URL)
	for _, o := range report.Outcomes {
		switch o.Status {
		case primary.SyncStatusResolved:
			fmt.Fprintf(a.out, "  %s %s → %s\n", color.New(color.FgGreen).Sprint("✓"), o.Ref, commit.Short(o.Hash))
		case primary.SyncStatusNotFound:
			fmt.Fprintf(a.out, "  %s %s: %s\n", color.New(color.FgYellow).Sprint("⚠"), o.Ref, o.Detail)
		default:
			fmt.Fprintf(a.out, "  %s %s: %s\n", color.New(color.FgRed).Sprint("✗"), o.Ref, o.Detail)
		}
	}

	if len(report.Outcomes) == 0 {
		fmt.Fprintln(a.out, "  No commits referenced yet.")
	}
	success(a.out, "%d resolved, %d not found, %d failed", report.Resolved, report.NotFound, report.Failed)
	return report, nil
}
