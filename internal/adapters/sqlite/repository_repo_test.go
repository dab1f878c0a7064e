package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/contrack/internal/adapters/sqlite"
	"github.com/example/contrack/internal/ports/secondary"
)

func TestRepositoryRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRepositoryRepository(db)
	ctx := context.Background()

	t.Run("creates repository successfully", func(t *testing.T) {
		record := &secondary.RepositoryRecord{
			ID:           "REPO-001",
			URL:          "https://github.com/acme/widgets",
			Organization: "acme",
			Name:         "widgets",
			Description:  "Widget factory",
			CreatedAt:    at(0),
		}

		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, "REPO-001")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.URL != record.URL || got.Organization != "acme" || got.Name != "widgets" {
			t.Errorf("got %+v, want fields of %+v", got, record)
		}
		if got.Description != "Widget factory" {
			t.Errorf("Description = %q, want %q", got.Description, "Widget factory")
		}
		if !got.CreatedAt.Equal(at(0)) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, at(0))
		}
		if !got.UpdatedAt.Equal(at(0)) {
			t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, at(0))
		}
	})

	t.Run("rejects duplicate URL", func(t *testing.T) {
		record := &secondary.RepositoryRecord{
			ID:           "REPO-002",
			URL:          "https://github.com/acme/widgets",
			Organization: "other",
			Name:         "copy",
		}
		if err := repo.Create(ctx, record); err == nil {
			t.Error("expected unique constraint error")
		}
	})
}

func TestRepositoryRepository_GetByURL(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRepositoryRepository(db)
	ctx := context.Background()

	seedRepository(t, db, "REPO-001", "https://github.com/acme/widgets")

	t.Run("finds repository by URL", func(t *testing.T) {
		got, err := repo.GetByURL(ctx, "https://github.com/acme/widgets")
		if err != nil {
			t.Fatalf("GetByURL failed: %v", err)
		}
		if got == nil || got.ID != "REPO-001" {
			t.Errorf("got %+v, want REPO-001", got)
		}
		if got != nil && got.Description != "" {
			t.Errorf("Description = %q, want empty for NULL", got.Description)
		}
	})

	t.Run("returns nil for unknown URL", func(t *testing.T) {
		got, err := repo.GetByURL(ctx, "https://github.com/acme/unknown")
		if err != nil {
			t.Fatalf("GetByURL failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("GetByID errors for unknown ID", func(t *testing.T) {
		if _, err := repo.GetByID(ctx, "REPO-999"); err == nil {
			t.Error("expected error for unknown ID")
		}
	})
}

func TestRepositoryRepository_ListAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRepositoryRepository(db)
	ctx := context.Background()

	for _, r := range []*secondary.RepositoryRecord{
		{ID: "REPO-001", URL: "https://b.example/zeta", Organization: "o", Name: "zeta"},
		{ID: "REPO-002", URL: "https://b.example/alpha", Organization: "o", Name: "alpha"},
		{ID: "REPO-003", URL: "https://a.example/alpha", Organization: "o", Name: "alpha"},
	} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("lists by name then URL", func(t *testing.T) {
		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		want := []string{"REPO-003", "REPO-002", "REPO-001"}
		if len(list) != len(want) {
			t.Fatalf("got %d repositories, want %d", len(list), len(want))
		}
		for i, id := range want {
			if list[i].ID != id {
				t.Errorf("list[%d] = %s, want %s", i, list[i].ID, id)
			}
		}
	})

	t.Run("updates metadata", func(t *testing.T) {
		err := repo.Update(ctx, &secondary.RepositoryRecord{
			ID: "REPO-001", Organization: "new-org", Name: "zeta2", Description: "renamed", UpdatedAt: at(5),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		got, _ := repo.GetByID(ctx, "REPO-001")
		if got.Organization != "new-org" || got.Name != "zeta2" || got.Description != "renamed" {
			t.Errorf("got %+v", got)
		}
		if !got.UpdatedAt.Equal(at(5)) {
			t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, at(5))
		}
	})

	t.Run("update of unknown ID fails", func(t *testing.T) {
		if err := repo.Update(ctx, &secondary.RepositoryRecord{ID: "REPO-404"}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("next ID follows the max", func(t *testing.T) {
		next, err := repo.GetNextID(ctx)
		if err != nil {
			t.Fatalf("GetNextID failed: %v", err)
		}
		if next != "REPO-004" {
			t.Errorf("GetNextID = %q, want REPO-004", next)
		}
	})
}
