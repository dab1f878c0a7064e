// Package contribution contains the pure business logic for contributions.
// Guards are pure functions that evaluate preconditions without side effects.
package contribution

import (
	"fmt"
	"strings"

	"github.com/example/contrack/internal/core/commit"
	apperrors "github.com/example/contrack/internal/errors"
)

// Advisory priority range. Values outside it are stored but warned about.
const (
	MinPriority = 1
	MaxPriority = 10
)

// Categories is the recommended category vocabulary.
var Categories = []string{
	"Core Feature",
	"Integration",
	"Infrastructure",
	"Feature Enhancement",
	"Feature",
	"Configuration",
	"Performance",
	"Bug Fix",
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Code    string
}

// Error converts the guard result to a coded error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return apperrors.New(r.Code, r.Reason)
}

func invalid(format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Reason: fmt.Sprintf(format, args...), Code: apperrors.CodeInvalidInput}
}

// AddContributionContext provides context for contribution creation guards.
type AddContributionContext struct {
	RepositoryURL string
	Name          string
	KeyCommits    CommitList
	Priority      int
	NameExists    bool // true if the repository already has a contribution with this name
}

// CanAddContribution evaluates whether a contribution can be added.
// Rules:
// - Name must not be empty
// - At least one key commit is required
// - Priority must not be negative (0 means unset)
// - (repository, name) must be unique (fail-fast, never overwrite)
func CanAddContribution(ctx AddContributionContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return invalid("contribution name cannot be empty")
	}
	if len(ctx.KeyCommits) == 0 {
		return invalid("at least one key commit is required")
	}
	if ctx.Priority < 0 {
		return invalid("priority cannot be negative (got %d)", ctx.Priority)
	}
	if ctx.NameExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("contribution %q already exists in %s", ctx.Name, ctx.RepositoryURL),
			Code:    apperrors.CodeContributionDup,
		}
	}
	return GuardResult{Allowed: true}
}

// UpdateContributionContext provides context for contribution update guards.
type UpdateContributionContext struct {
	RepositoryURL  string
	Name           string
	Exists         bool
	FieldsSupplied int
	KeyCommits     *CommitList
	Priority       *int
}

// CanUpdateContribution evaluates whether a contribution update can proceed.
// Rules:
// - The contribution must exist
// - At least one field must be supplied
// - Key commits, when supplied, cannot be emptied
// - Priority, when supplied, must not be negative
func CanUpdateContribution(ctx UpdateContributionContext) GuardResult {
	if !ctx.Exists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("contribution %q not found in %s", ctx.Name, ctx.RepositoryURL),
			Code:    apperrors.CodeContributionNotFound,
		}
	}
	if ctx.FieldsSupplied == 0 {
		return invalid("nothing to update: supply at least one field")
	}
	if ctx.KeyCommits != nil && len(*ctx.KeyCommits) == 0 {
		return invalid("at least one key commit is required")
	}
	if ctx.Priority != nil && *ctx.Priority < 0 {
		return invalid("priority cannot be negative (got %d)", *ctx.Priority)
	}
	return GuardResult{Allowed: true}
}

// Advisories returns non-fatal warnings about advisory metadata.
func Advisories(priority int, category string, lists ...CommitList) []string {
	var warnings []string

	if priority != 0 && (priority < MinPriority || priority > MaxPriority) {
		warnings = append(warnings, fmt.Sprintf("priority %d is outside the recommended range %d-%d", priority, MinPriority, MaxPriority))
	}

	if category != "" && !IsKnownCategory(category) {
		warnings = append(warnings, fmt.Sprintf("category %q is not one of: %s", category, strings.Join(Categories, ", ")))
	}

	for _, list := range lists {
		for _, ref := range list {
			if !commit.IsHashRef(ref) {
				warnings = append(warnings, fmt.Sprintf("%q does not look like a commit hash", ref))
			}
		}
	}

	return warnings
}

// IsKnownCategory reports whether category is in the recommended vocabulary.
func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
