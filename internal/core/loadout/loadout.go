// Package loadout defines named sets of agent rules and prompt templates.
//
// A loadout is what the agent_rules and prompts tables hold at any moment.
// The default loadout seeds a fresh database and can be restored with
// `contrack loadout reload-default`.
package loadout

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultName is the name reserved for the built-in loadout.
const DefaultName = "default"

// Rule is an instruction for an automated caller reading the database.
type Rule struct {
	Name        string `yaml:"name"`
	Instruction string `yaml:"instruction"`
	Priority    int    `yaml:"priority"`
	Category    string `yaml:"category,omitempty"`
	Examples    string `yaml:"examples,omitempty"`
}

// Prompt is a reusable prompt template with {variable} placeholders.
type Prompt struct {
	Name        string   `yaml:"name"`
	Text        string   `yaml:"text"`
	Description string   `yaml:"description,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Variables   []string `yaml:"variables,omitempty"`
}

// Loadout is a named snapshot of rules and prompts.
type Loadout struct {
	Name    string   `yaml:"name"`
	Rules   []Rule   `yaml:"rules"`
	Prompts []Prompt `yaml:"prompts"`
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName checks that a loadout name is usable as a file name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("loadout name cannot be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid loadout name %q: use letters, digits, '.', '_' or '-'", name)
	}
	return nil
}

// Validate checks names are present and unique within the loadout.
func (l *Loadout) Validate() error {
	seen := make(map[string]bool)
	for _, r := range l.Rules {
		if r.Name == "" || r.Instruction == "" {
			return fmt.Errorf("loadout %q: every rule needs a name and an instruction", l.Name)
		}
		if seen[r.Name] {
			return fmt.Errorf("loadout %q: duplicate rule %q", l.Name, r.Name)
		}
		seen[r.Name] = true
	}

	seen = make(map[string]bool)
	for _, p := range l.Prompts {
		if p.Name == "" || p.Text == "" {
			return fmt.Errorf("loadout %q: every prompt needs a name and text", l.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("loadout %q: duplicate prompt %q", l.Name, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Default returns the built-in loadout.
func Default() *Loadout {
	return &Loadout{
		Name: DefaultName,
		Rules: []Rule{
			{
				Name: "read_contributions_database",
				Instruction: `When given a contrack database file:
1. Read agent_rules first; it explains how the data is meant to be used
2. Read repositories to see which projects are tracked
3. Read contributions for the documented units of work
4. Look up hashes in commits when author, date or diff size is needed
5. Use prompts for recurring tasks
6. Check updated_at and synced_at to judge how fresh the data is`,
				Priority: 10,
				Category: "Database Usage",
			},
			{
				Name: "generate_contributions_markdown",
				Instruction: `To write or refresh a contributions document:
1. Select the repository's contributions ordered by priority (highest first), then by name
2. For each one include the name, overview and description
3. List key commits with short hash, author, date and summary from the commits table
4. Mention how many related commits back the contribution
5. Keep the same layout across repositories`,
				Priority: 9,
				Category: "Documentation",
			},
			{
				Name: "maintain_consistency",
				Instruction: `When adding or editing contributions:
1. Reuse the structure of similar existing entries
2. Pick a category from: Core Feature, Integration, Infrastructure, Feature Enhancement, Feature, Configuration, Performance, Bug Fix
3. Score priority from 1 to 10: 10 is core work, 8-9 major features, 5-7 notable features, 1-4 small fixes
4. Put the most representative commit first in key_commits`,
				Priority: 8,
				Category: "Data Quality",
				Examples: "category: Performance, priority: 7, key_commits: [\"3f2a9c1\"]",
			},
		},
		Prompts: []Prompt{
			{
				Name: "analyze_contributions",
				Text: `Review the contributions recorded for {repository_url}.

1. Read the agent rules
2. Load every contribution for the repository
3. For each contribution summarize what was built, the notable technical choices and the commits behind it, with dates

Follow the conventions already present in the database.`,
				Description: "Summarize every contribution recorded for a repository",
				Category:    "Analysis",
				Variables:   []string{"repository_url"},
			},
			{
				Name: "generate_contributions_markdown",
				Text: `Refresh the contributions document for {repository_url} from the database.

1. Read the existing document if there is one
2. Query contributions ordered by priority and name
3. Render each contribution with its key commits, authors and dates
4. Keep the existing document style`,
				Description: "Regenerate the contributions markdown for a repository",
				Category:    "Documentation",
				Variables:   []string{"repository_url"},
			},
		},
	}
}
