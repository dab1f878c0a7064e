package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/contrack/internal/ports/secondary"
)

// AgentRepository implements secondary.AgentRepository with SQLite.
type AgentRepository struct {
	db *sql.DB
}

// NewAgentRepository creates a new SQLite agent rule and prompt repository.
func NewAgentRepository(db *sql.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// ListRules retrieves all agent rules ordered by priority DESC, then name.
func (r *AgentRepository) ListRules(ctx context.Context) ([]*secondary.AgentRuleRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, instruction, priority, category, examples FROM agent_rules ORDER BY priority DESC, name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent rules: %w", err)
	}
	defer rows.Close()

	var rules []*secondary.AgentRuleRecord
	for rows.Next() {
		var category, examples sql.NullString
		record := &secondary.AgentRuleRecord{}
		if err := rows.Scan(&record.Name, &record.Instruction, &record.Priority, &category, &examples); err != nil {
			return nil, fmt.Errorf("failed to scan agent rule: %w", err)
		}
		record.Category = category.String
		record.Examples = examples.String
		rules = append(rules, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list agent rules: %w", err)
	}

	return rules, nil
}

// ListPrompts retrieves all prompt templates ordered by name.
func (r *AgentRepository) ListPrompts(ctx context.Context) ([]*secondary.PromptRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, prompt_text, description, category, variables FROM prompts ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*secondary.PromptRecord
	for rows.Next() {
		var (
			description, category sql.NullString
			variables             string
		)
		record := &secondary.PromptRecord{}
		if err := rows.Scan(&record.Name, &record.Text, &description, &category, &variables); err != nil {
			return nil, fmt.Errorf("failed to scan prompt: %w", err)
		}
		record.Description = description.String
		record.Category = category.String
		if record.Variables, err = decodeList(variables); err != nil {
			return nil, fmt.Errorf("prompt %s variables: %w", record.Name, err)
		}
		prompts = append(prompts, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	return prompts, nil
}

// ReplaceAll swaps the contents of both tables in a single transaction.
func (r *AgentRepository) ReplaceAll(ctx context.Context, rules []*secondary.AgentRuleRecord, prompts []*secondary.PromptRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM agent_rules"); err != nil {
		return fmt.Errorf("failed to clear agent rules: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM prompts"); err != nil {
		return fmt.Errorf("failed to clear prompts: %w", err)
	}

	for _, rule := range rules {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO agent_rules (name, instruction, priority, category, examples) VALUES (?, ?, ?, ?, ?)",
			rule.Name, rule.Instruction, rule.Priority, nullString(rule.Category), nullString(rule.Examples),
		)
		if err != nil {
			return fmt.Errorf("failed to insert agent rule %s: %w", rule.Name, err)
		}
	}

	for _, prompt := range prompts {
		variables, err := encodeList(prompt.Variables)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO prompts (name, prompt_text, description, category, variables) VALUES (?, ?, ?, ?, ?)",
			prompt.Name, prompt.Text, nullString(prompt.Description), nullString(prompt.Category), variables,
		)
		if err != nil {
			return fmt.Errorf("failed to insert prompt %s: %w", prompt.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

var _ secondary.AgentRepository = (*AgentRepository)(nil)
