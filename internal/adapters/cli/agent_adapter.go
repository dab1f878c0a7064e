package cli

import (
	"context"
	"io"

	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/templates"
)

// AgentAdapter prints the agent guide.
type AgentAdapter struct {
	service primary.AgentService
	out     io.Writer
}

// NewAgentAdapter creates a new AgentAdapter with the given service.
func NewAgentAdapter(service primary.AgentService, out io.Writer) *AgentAdapter {
	return &AgentAdapter{service: service, out: out}
}

// Print renders the current rules and prompts as a paste-ready guide.
func (a *AgentAdapter) Print(ctx context.Context) error {
	g, err := a.service.Guidance(ctx)
	if err != nil {
		return err
	}
	return templates.RenderAgentGuide(a.out, g)
}
