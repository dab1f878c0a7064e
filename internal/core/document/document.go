// Package document holds the pure rules for the rendered contributions document:
// the view model handed to the template, entry ordering and the author filter.
package document

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Document is the data the markdown template renders.
type Document struct {
	RepositoryName string
	RepositoryURL  string
	Organization   string
	Description    string
	Author         string // active author filter, empty for none
	GeneratedAt    time.Time
	Entries        []Entry
}

// Entry is one contribution in the document.
type Entry struct {
	Name         string
	Category     string
	Priority     int // 0 when unset
	Overview     string
	Description  string
	KeyCommits   []CommitLine
	RelatedCount int
}

// CommitLine is one key commit row. Unresolved rows carry only Ref.
type CommitLine struct {
	Ref         string
	Hash        string
	AuthorName  string
	AuthorEmail string
	CommittedAt time.Time
	Summary     string
	Resolved    bool
}

// Sort orders entries by priority (highest first, unset last), then name.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(rank(b.Priority), rank(a.Priority)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// rank maps the unset priority below every explicit one, negatives included.
func rank(priority int) int {
	if priority == 0 {
		return minRank
	}
	return priority
}

const minRank = -1 << 31

// NormalizeAuthor trims and folds an author filter for comparison.
func NormalizeAuthor(filter string) string {
	return strings.ToLower(strings.TrimSpace(filter))
}

// MatchesAuthor reports whether any resolved key commit was authored by filter.
// The comparison is case-insensitive and exact on either name or email.
// An empty filter matches everything.
func MatchesAuthor(filter string, lines []CommitLine) bool {
	want := NormalizeAuthor(filter)
	if want == "" {
		return true
	}
	for _, l := range lines {
		if !l.Resolved {
			continue
		}
		if NormalizeAuthor(l.AuthorName) == want || NormalizeAuthor(l.AuthorEmail) == want {
			return true
		}
	}
	return false
}
