package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/contrack/internal/config"
	"github.com/example/contrack/internal/ports/primary"
)

// mockStatsService implements primary.StatsService for testing
type mockStatsService struct{ stats *primary.Stats }

func (m *mockStatsService) GetStats(ctx context.Context) (*primary.Stats, error) {
	return m.stats, nil
}

// mockLoadoutService implements primary.LoadoutService for testing
type mockLoadoutService struct {
	names []string
}

func (m *mockLoadoutService) ListLoadouts(ctx context.Context) ([]string, error) {
	return m.names, nil
}

func (m *mockLoadoutService) CreateLoadout(ctx context.Context, name string) error { return nil }

func (m *mockLoadoutService) LoadLoadout(ctx context.Context, name string) (*primary.LoadoutSummary, error) {
	return &primary.LoadoutSummary{Name: name, Rules: 2, Prompts: 1}, nil
}

func (m *mockLoadoutService) SaveLoadout(ctx context.Context, name string) (*primary.LoadoutSummary, error) {
	return &primary.LoadoutSummary{Name: name, Rules: 3, Prompts: 2}, nil
}

func (m *mockLoadoutService) DeleteLoadout(ctx context.Context, name string) error { return nil }

func (m *mockLoadoutService) ReloadDefault(ctx context.Context) (*primary.LoadoutSummary, error) {
	return &primary.LoadoutSummary{Name: "default", Rules: 3, Prompts: 2}, nil
}

// mockConfigService implements primary.ConfigService for testing
type mockConfigService struct{}

func (m *mockConfigService) SyncToFile(ctx context.Context) (*primary.ConfigSyncResult, error) {
	return &primary.ConfigSyncResult{Path: "/data/config.toml", Repositories: 2, Organizations: 1}, nil
}

func (m *mockConfigService) LoadFromFile(ctx context.Context) (*primary.ConfigLoadResult, error) {
	return &primary.ConfigLoadResult{Path: "/data/config.toml", Created: 1, Updated: 1}, nil
}

func (m *mockConfigService) AddOrganization(ctx context.Context, req primary.AddOrganizationRequest) error {
	return nil
}

func (m *mockConfigService) AddRepository(ctx context.Context, req primary.InitializeRepositoryRequest) error {
	return nil
}

// mockAgentService implements primary.AgentService for testing
type mockAgentService struct{ guidance *primary.Guidance }

func (m *mockAgentService) Guidance(ctx context.Context) (*primary.Guidance, error) {
	return m.guidance, nil
}

func TestStatsAdapter_Show(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStatsAdapter(&mockStatsService{stats: &primary.Stats{
		Repositories:  1,
		Contributions: 3,
		Categories:    []primary.CategoryCount{{Category: "Core Feature", Count: 2}, {Category: "Uncategorized", Count: 1}},
	}}, &buf)

	if _, err := adapter.Show(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Contributions: 3") {
		t.Errorf("expected counts, got: %s", out)
	}
	if !strings.Contains(out, "Core Feature") || !strings.Contains(out, "Uncategorized") {
		t.Errorf("expected category rows, got: %s", out)
	}
}

func TestLoadoutAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("list empty", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewLoadoutAdapter(&mockLoadoutService{}, &buf)
		if _, err := adapter.List(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "No loadouts saved.") {
			t.Errorf("expected empty message, got: %s", buf.String())
		}
	})

	t.Run("list names", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewLoadoutAdapter(&mockLoadoutService{names: []string{"default", "review"}}, &buf)
		if _, err := adapter.List(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "  review\n") {
			t.Errorf("expected names listed, got: %s", buf.String())
		}
	})

	t.Run("save and load", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewLoadoutAdapter(&mockLoadoutService{}, &buf)
		if _, err := adapter.Save(ctx, "review"); err != nil {
			t.Fatalf("save: %v", err)
		}
		if _, err := adapter.Load(ctx, "review"); err != nil {
			t.Fatalf("load: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "Saved review: 3 rules, 2 prompts") || !strings.Contains(out, "Loaded review: 2 rules, 1 prompts") {
			t.Errorf("unexpected output: %s", out)
		}
	})
}

func TestConfigAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewConfigAdapter(&mockConfigService{}, &buf)
	ctx := context.Background()

	if _, err := adapter.Sync(ctx); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if _, err := adapter.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := adapter.AddRepository(ctx, primary.InitializeRepositoryRequest{URL: "https://github.com/acme/widgets"}); err != nil {
		t.Fatalf("add-repo: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Wrote 2 repositories and 1 organizations to /data/config.toml",
		"Loaded /data/config.toml: 1 created, 1 updated",
		"Added repository https://github.com/acme/widgets to config file",
		"contrack config load",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestAgentAdapter_Print(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAgentAdapter(&mockAgentService{guidance: &primary.Guidance{
		DatabasePath: "/data/contributions.db",
		Rules:        []primary.AgentRule{{Name: "cite-commits", Instruction: "Cite hashes.", Priority: 10}},
		Prompts:      []primary.Prompt{{Name: "summary", Text: "Summarize {{repo}}", Variables: []string{"repo"}}},
	}}, &buf)

	if err := adapter.Print(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Database: /data/contributions.db",
		"### cite-commits (priority 10)",
		"Cite hashes.",
		"Variables: repo",
		"Summarize {{repo}}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestPrintLocations(t *testing.T) {
	var buf bytes.Buffer
	PrintLocations(&buf, &config.Locations{
		AppDir:   "/home/ada/.config/contrack",
		DataDir:  "/home/ada/.config/contrack",
		Database: "/home/ada/.config/contrack/contributions.db",
		Source:   config.SourceAppData,
	})

	out := buf.String()
	if !strings.Contains(out, "contributions.db (app-data)") {
		t.Errorf("expected database and source, got: %s", out)
	}
	if !strings.Contains(out, "Project dir:   -") {
		t.Errorf("expected dash for missing project dir, got: %s", out)
	}
	if !strings.Contains(out, "/home/ada/.config/contrack/loadouts") {
		t.Errorf("expected loadout dir, got: %s", out)
	}
}
