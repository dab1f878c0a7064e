package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/contrack/internal/core/loadout"
)

// SeedDefaults loads the default agent rules and prompts into empty tables.
// Each table is seeded independently, so a table emptied by hand is refilled
// on the next start while the other is left alone.
func SeedDefaults(ctx context.Context, database *sql.DB) error {
	defaults := loadout.Default()

	var count int
	if err := database.QueryRowContext(ctx, "SELECT COUNT(*) FROM agent_rules").Scan(&count); err != nil {
		return fmt.Errorf("count agent rules: %w", err)
	}
	if count == 0 {
		for _, r := range defaults.Rules {
			if _, err := database.ExecContext(ctx,
				"INSERT INTO agent_rules (name, instruction, priority, category, examples) VALUES (?, ?, ?, ?, ?)",
				r.Name, r.Instruction, r.Priority, nullString(r.Category), nullString(r.Examples),
			); err != nil {
				return fmt.Errorf("seed agent rules: %w", err)
			}
		}
	}

	if err := database.QueryRowContext(ctx, "SELECT COUNT(*) FROM prompts").Scan(&count); err != nil {
		return fmt.Errorf("count prompts: %w", err)
	}
	if count == 0 {
		for _, p := range defaults.Prompts {
			variables, err := json.Marshal(p.Variables)
			if err != nil {
				return fmt.Errorf("encode prompt variables: %w", err)
			}
			if _, err := database.ExecContext(ctx,
				"INSERT INTO prompts (name, prompt_text, description, category, variables) VALUES (?, ?, ?, ?, ?)",
				p.Name, p.Text, nullString(p.Description), nullString(p.Category), string(variables),
			); err != nil {
				return fmt.Errorf("seed prompts: %w", err)
			}
		}
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
