package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), fmt.Sprintf(format, args...))
}

func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgYellow).Sprint("⚠"), fmt.Sprintf(format, args...))
}

func printWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		warn(w, "%s", msg)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02")
}

func formatPriority(p int) string {
	if p == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", p)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
