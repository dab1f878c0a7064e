package app

import (
	"context"

	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

// AgentServiceImpl implements the AgentService interface.
type AgentServiceImpl struct {
	agentRepo    secondary.AgentRepository
	databasePath string
}

// NewAgentService creates a new AgentService with injected dependencies.
func NewAgentService(agentRepo secondary.AgentRepository, databasePath string) *AgentServiceImpl {
	return &AgentServiceImpl{
		agentRepo:    agentRepo,
		databasePath: databasePath,
	}
}

// Guidance returns the current agent rules and prompt templates.
func (s *AgentServiceImpl) Guidance(ctx context.Context) (*primary.Guidance, error) {
	rules, err := s.agentRepo.ListRules(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to read agent rules", err)
	}
	prompts, err := s.agentRepo.ListPrompts(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to read prompts", err)
	}

	g := &primary.Guidance{DatabasePath: s.databasePath}
	for _, r := range rules {
		g.Rules = append(g.Rules, primary.AgentRule{
			Name: r.Name, Instruction: r.Instruction, Priority: r.Priority, Category: r.Category, Examples: r.Examples,
		})
	}
	for _, p := range prompts {
		g.Prompts = append(g.Prompts, primary.Prompt{
			Name: p.Name, Text: p.Text, Description: p.Description, Category: p.Category, Variables: p.Variables,
		})
	}
	return g, nil
}

// Ensure AgentServiceImpl implements the interface
var _ primary.AgentService = (*AgentServiceImpl)(nil)
