// Package errors provides the error taxonomy used across contrack.
//
// Every failure a command can report falls into one Kind:
//   - NotFound: a repository, contribution, commit or loadout is absent
//   - Conflict: a duplicate repository or contribution on creation
//   - InvalidInput: malformed flags, empty required fields, bad priority
//   - ExternalFailure: unreadable git checkout, unwritable database or file
//
// Codes follow the format {domain}.{error} and are stable, so tests and
// scripts can match on them instead of on message text.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for propagation and exit codes.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate here.
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindInvalidInput
	KindExternalFailure
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidInput:
		return "invalid_input"
	case KindExternalFailure:
		return "external_failure"
	default:
		return "unknown"
	}
}

// Error codes by domain.
const (
	CodeRepositoryNotFound   = "repository.not_found"
	CodeRepositoryDuplicate  = "repository.duplicate"
	CodeContributionNotFound = "contribution.not_found"
	CodeContributionDup      = "contribution.duplicate"
	CodeCommitNotFound       = "commit.not_found"
	CodeNotAGitRepository    = "git.not_a_repository"
	CodeGitFailed            = "git.failed"
	CodeInvalidInput         = "input.invalid"
	CodeStorageFailed        = "storage.failed"
	CodeConfigFailed         = "config.failed"
	CodeLoadoutNotFound      = "loadout.not_found"
	CodeLoadoutExists        = "loadout.exists"
	CodeUnknown              = "error.unknown"
)

var codeKinds = map[string]Kind{
	CodeRepositoryNotFound:   KindNotFound,
	CodeRepositoryDuplicate:  KindConflict,
	CodeContributionNotFound: KindNotFound,
	CodeContributionDup:      KindConflict,
	CodeCommitNotFound:       KindNotFound,
	CodeNotAGitRepository:    KindExternalFailure,
	CodeGitFailed:            KindExternalFailure,
	CodeInvalidInput:         KindInvalidInput,
	CodeStorageFailed:        KindExternalFailure,
	CodeConfigFailed:         KindExternalFailure,
	CodeLoadoutNotFound:      KindNotFound,
	CodeLoadoutExists:        KindConflict,
}

// CodedError wraps an error with a stable error code.
type CodedError struct {
	Code    string // Stable error code (e.g., "repository.not_found")
	Message string // Human-readable error message
	Cause   error  // Underlying error (may be nil)
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CodedError) Unwrap() error {
	return e.Cause
}

// Kind returns the kind the code belongs to.
func (e *CodedError) Kind() Kind {
	if k, ok := codeKinds[e.Code]; ok {
		return k
	}
	return KindUnknown
}

// New creates a new CodedError with the given code and message.
func New(code, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// Wrap creates a new CodedError wrapping an existing error.
func Wrap(code, message string, cause error) *CodedError {
	return &CodedError{Code: code, Message: message, Cause: cause}
}

// GetCode extracts the error code from an error.
// Falls back to CodeUnknown for errors that carry no code.
func GetCode(err error) string {
	if err == nil {
		return ""
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code string) bool {
	return GetCode(err) == code
}

// KindOf returns the Kind of the outermost coded error in the chain.
func KindOf(err error) Kind {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Kind()
	}
	return KindUnknown
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return 2
	case KindNotFound:
		return 3
	case KindConflict:
		return 4
	case KindExternalFailure:
		return 5
	default:
		return 1
	}
}

// ErrCommitNotFound is the sentinel for a reference that names no single commit.
var ErrCommitNotFound = New(CodeCommitNotFound, "commit not found")

// Common constructors.

// RepositoryNotFound reports a URL with no registered repository.
func RepositoryNotFound(url string) *CodedError {
	return New(CodeRepositoryNotFound, fmt.Sprintf("repository %q not found (run 'contrack init' first)", url))
}

// ContributionNotFound reports a missing (repository, name) pair.
func ContributionNotFound(url, name string) *CodedError {
	return New(CodeContributionNotFound, fmt.Sprintf("contribution %q not found in %s", name, url))
}

// NotAGitRepository reports a checkout path git cannot open.
func NotAGitRepository(path string, cause error) *CodedError {
	return Wrap(CodeNotAGitRepository, fmt.Sprintf("%s is not a git repository", path), cause)
}

// InvalidInput reports a malformed argument.
func InvalidInput(format string, args ...any) *CodedError {
	return New(CodeInvalidInput, fmt.Sprintf(format, args...))
}

// Storage wraps a database failure.
func Storage(message string, cause error) *CodedError {
	return Wrap(CodeStorageFailed, message, cause)
}
