// Package repository contains the pure business logic for the repository registry.
// Guards are pure functions that evaluate preconditions without side effects.
package repository

import (
	"fmt"
	"strings"

	apperrors "github.com/example/contrack/internal/errors"
)

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

// InitializeRepositoryContext provides context for repository initialization guards.
type InitializeRepositoryContext struct {
	URL          string
	Organization string
	Name         string
	URLExists    bool // true if a repository with this URL is already registered
}

// CanInitializeRepository evaluates whether a repository can be registered.
// Rules:
// - URL, organization and name must not be empty
// - URL must not already be registered (fail-fast, never overwrite)
func CanInitializeRepository(ctx InitializeRepositoryContext) GuardResult {
	required := []struct{ field, value string }{
		{"repository URL", ctx.URL},
		{"organization", ctx.Organization},
		{"repository name", ctx.Name},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("%s cannot be empty", r.field),
				Code:    apperrors.CodeInvalidInput,
			}
		}
	}

	if ctx.URLExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("repository %q already exists", ctx.URL),
			Code:    apperrors.CodeRepositoryDuplicate,
		}
	}

	return GuardResult{Allowed: true}
}
