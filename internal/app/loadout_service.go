package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/contrack/internal/core/loadout"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

// LoadoutServiceImpl implements the LoadoutService interface.
type LoadoutServiceImpl struct {
	agentRepo secondary.AgentRepository
	store     secondary.LoadoutStore
	logger    *slog.Logger
}

// NewLoadoutService creates a new LoadoutService with injected dependencies.
func NewLoadoutService(agentRepo secondary.AgentRepository, store secondary.LoadoutStore, logger *slog.Logger) *LoadoutServiceImpl {
	return &LoadoutServiceImpl{
		agentRepo: agentRepo,
		store:     store,
		logger:    logger,
	}
}

// ListLoadouts returns saved loadout names.
func (s *LoadoutServiceImpl) ListLoadouts(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfigFailed, "failed to list loadouts", err)
	}
	return names, nil
}

// CreateLoadout saves a new empty loadout.
func (s *LoadoutServiceImpl) CreateLoadout(ctx context.Context, name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}

	existing, err := s.get(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.New(apperrors.CodeLoadoutExists, fmt.Sprintf("loadout %q already exists", name))
	}

	return s.save(ctx, &loadout.Loadout{Name: name, Rules: []loadout.Rule{}, Prompts: []loadout.Prompt{}})
}

// LoadLoadout replaces the current rules and prompts with a saved loadout.
func (s *LoadoutServiceImpl) LoadLoadout(ctx context.Context, name string) (*primary.LoadoutSummary, error) {
	if err := s.checkName(name); err != nil {
		return nil, err
	}

	l, err := s.get(ctx, name)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperrors.New(apperrors.CodeLoadoutNotFound, fmt.Sprintf("loadout %q not found", name))
	}
	return s.apply(ctx, l)
}

// SaveLoadout writes the current rules and prompts to a loadout, overwriting it.
func (s *LoadoutServiceImpl) SaveLoadout(ctx context.Context, name string) (*primary.LoadoutSummary, error) {
	if err := s.checkName(name); err != nil {
		return nil, err
	}

	rules, err := s.agentRepo.ListRules(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to read agent rules", err)
	}
	prompts, err := s.agentRepo.ListPrompts(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to read prompts", err)
	}

	l := &loadout.Loadout{Name: name, Rules: []loadout.Rule{}, Prompts: []loadout.Prompt{}}
	for _, r := range rules {
		l.Rules = append(l.Rules, loadout.Rule{
			Name: r.Name, Instruction: r.Instruction, Priority: r.Priority, Category: r.Category, Examples: r.Examples,
		})
	}
	for _, p := range prompts {
		l.Prompts = append(l.Prompts, loadout.Prompt{
			Name: p.Name, Text: p.Text, Description: p.Description, Category: p.Category, Variables: p.Variables,
		})
	}

	if err := s.save(ctx, l); err != nil {
		return nil, err
	}
	return &primary.LoadoutSummary{Name: name, Rules: len(l.Rules), Prompts: len(l.Prompts)}, nil
}

// DeleteLoadout removes a saved loadout.
func (s *LoadoutServiceImpl) DeleteLoadout(ctx context.Context, name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}

	existing, err := s.get(ctx, name)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.New(apperrors.CodeLoadoutNotFound, fmt.Sprintf("loadout %q not found", name))
	}

	if err := s.store.Delete(ctx, name); err != nil {
		return apperrors.Wrap(apperrors.CodeConfigFailed, "failed to delete loadout", err)
	}
	return nil
}

// ReloadDefault restores the built-in rules and prompts.
func (s *LoadoutServiceImpl) ReloadDefault(ctx context.Context) (*primary.LoadoutSummary, error) {
	return s.apply(ctx, loadout.Default())
}

func (s *LoadoutServiceImpl) apply(ctx context.Context, l *loadout.Loadout) (*primary.LoadoutSummary, error) {
	if err := l.Validate(); err != nil {
		return nil, apperrors.InvalidInput("%v", err)
	}

	rules := make([]*secondary.AgentRuleRecord, len(l.Rules))
	for i, r := range l.Rules {
		rules[i] = &secondary.AgentRuleRecord{
			Name: r.Name, Instruction: r.Instruction, Priority: r.Priority, Category: r.Category, Examples: r.Examples,
		}
	}
	prompts := make([]*secondary.PromptRecord, len(l.Prompts))
	for i, p := range l.Prompts {
		prompts[i] = &secondary.PromptRecord{
			Name: p.Name, Text: p.Text, Description: p.Description, Category: p.Category, Variables: p.Variables,
		}
	}

	if err := s.agentRepo.ReplaceAll(ctx, rules, prompts); err != nil {
		return nil, apperrors.Storage("failed to replace agent rules and prompts", err)
	}

	s.logger.Debug("loadout applied", "name", l.Name, "rules", len(rules), "prompts", len(prompts))
	return &primary.LoadoutSummary{Name: l.Name, Rules: len(rules), Prompts: len(prompts)}, nil
}

func (s *LoadoutServiceImpl) checkName(name string) error {
	if err := loadout.ValidateName(name); err != nil {
		return apperrors.InvalidInput("%v", err)
	}
	return nil
}

func (s *LoadoutServiceImpl) get(ctx context.Context, name string) (*loadout.Loadout, error) {
	l, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfigFailed, "failed to read loadout", err)
	}
	return l, nil
}

func (s *LoadoutServiceImpl) save(ctx context.Context, l *loadout.Loadout) error {
	if err := s.store.Save(ctx, l); err != nil {
		return apperrors.Wrap(apperrors.CodeConfigFailed, "failed to save loadout", err)
	}
	return nil
}

// Ensure LoadoutServiceImpl implements the interface
var _ primary.LoadoutService = (*LoadoutServiceImpl)(nil)
