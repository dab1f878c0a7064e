package primary

import "context"

// AgentService defines the primary port for agent guidance.
type AgentService interface {
	// Guidance returns the current agent rules and prompt templates.
	Guidance(ctx context.Context) (*Guidance, error)
}

// Guidance bundles the agent rules and prompts for display.
type Guidance struct {
	DatabasePath string
	Rules        []AgentRule
	Prompts      []Prompt
}

// AgentRule is an instruction for automated callers.
type AgentRule struct {
	Name        string
	Instruction string
	Priority    int
	Category    string
	Examples    string
}

// Prompt is a reusable prompt template.
type Prompt struct {
	Name        string
	Text        string
	Description string
	Category    string
	Variables   []string
}
