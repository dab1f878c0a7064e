package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/contrack/internal/config"
	"github.com/example/contrack/internal/core/commit"
	"github.com/example/contrack/internal/core/loadout"
	"github.com/example/contrack/internal/logging"
	"github.com/example/contrack/internal/ports/secondary"
)

var testLogger = logging.Discard()

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	t := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// mockRepositoryRepository implements secondary.RepositoryRepository for testing.
type mockRepositoryRepository struct {
	repos   map[string]*secondary.RepositoryRecord
	byURL   map[string]*secondary.RepositoryRecord
	nextID  int
	listErr error
}

func newMockRepositoryRepository() *mockRepositoryRepository {
	return &mockRepositoryRepository{
		repos:  make(map[string]*secondary.RepositoryRecord),
		byURL:  make(map[string]*secondary.RepositoryRecord),
		nextID: 1,
	}
}

func (m *mockRepositoryRepository) Create(ctx context.Context, repo *secondary.RepositoryRecord) error {
	if _, ok := m.byURL[repo.URL]; ok {
		return fmt.Errorf("UNIQUE constraint failed: repositories.url")
	}
	m.repos[repo.ID] = repo
	m.byURL[repo.URL] = repo
	return nil
}

func (m *mockRepositoryRepository) GetByID(ctx context.Context, id string) (*secondary.RepositoryRecord, error) {
	if r, ok := m.repos[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("repository %s not found", id)
}

func (m *mockRepositoryRepository) GetByURL(ctx context.Context, url string) (*secondary.RepositoryRecord, error) {
	if r, ok := m.byURL[url]; ok {
		return r, nil
	}
	return nil, nil // nil, nil means not found (not an error)
}

func (m *mockRepositoryRepository) List(ctx context.Context) ([]*secondary.RepositoryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.RepositoryRecord
	for _, r := range m.repos {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].URL < result[j].URL
	})
	return result, nil
}

func (m *mockRepositoryRepository) Update(ctx context.Context, repo *secondary.RepositoryRecord) error {
	if _, ok := m.repos[repo.ID]; !ok {
		return fmt.Errorf("repository %s not found", repo.ID)
	}
	m.repos[repo.ID] = repo
	m.byURL[repo.URL] = repo
	return nil
}

func (m *mockRepositoryRepository) GetNextID(ctx context.Context) (string, error) {
	id := m.nextID
	m.nextID++
	return fmt.Sprintf("REPO-%03d", id), nil
}

// seed registers a repository directly and returns it.
func (m *mockRepositoryRepository) seed(url string) *secondary.RepositoryRecord {
	id, _ := m.GetNextID(context.Background())
	r := &secondary.RepositoryRecord{ID: id, URL: url, Organization: "acme", Name: "widgets"}
	_ = m.Create(context.Background(), r)
	return r
}

// mockContributionRepository implements secondary.ContributionRepository for testing.
type mockContributionRepository struct {
	items  []*secondary.ContributionRecord
	nextID int
}

func newMockContributionRepository() *mockContributionRepository {
	return &mockContributionRepository{nextID: 1}
}

func (m *mockContributionRepository) Create(ctx context.Context, c *secondary.ContributionRecord) error {
	for _, existing := range m.items {
		if existing.RepositoryID == c.RepositoryID && existing.Name == c.Name {
			return fmt.Errorf("UNIQUE constraint failed: contributions.repository_id, contributions.name")
		}
	}
	copied := *c
	m.items = append(m.items, &copied)
	return nil
}

func (m *mockContributionRepository) GetByName(ctx context.Context, repositoryID, name string) (*secondary.ContributionRecord, error) {
	for _, c := range m.items {
		if c.RepositoryID == repositoryID && c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockContributionRepository) List(ctx context.Context, repositoryID string) ([]*secondary.ContributionRecord, error) {
	var result []*secondary.ContributionRecord
	for _, c := range m.items {
		if c.RepositoryID == repositoryID {
			copied := *c
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if (a.Priority == 0) != (b.Priority == 0) {
			return b.Priority == 0
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return result, nil
}

func (m *mockContributionRepository) Update(ctx context.Context, c *secondary.ContributionRecord) error {
	for i, existing := range m.items {
		if existing.ID == c.ID {
			copied := *c
			m.items[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("contribution %s not found", c.ID)
}

func (m *mockContributionRepository) GetNextID(ctx context.Context) (string, error) {
	id := m.nextID
	m.nextID++
	return fmt.Sprintf("CONTRIB-%03d", id), nil
}

// mockCommitRepository implements secondary.CommitRepository for testing.
type mockCommitRepository struct {
	commits   map[string]*secondary.CommitRecord // keyed by repository + hash
	upserts   int
	upsertErr error
}

func newMockCommitRepository() *mockCommitRepository {
	return &mockCommitRepository{commits: make(map[string]*secondary.CommitRecord)}
}

func (m *mockCommitRepository) Upsert(ctx context.Context, c *secondary.CommitRecord) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts++
	copied := *c
	m.commits[c.RepositoryID+"/"+c.Hash] = &copied
	return nil
}

func (m *mockCommitRepository) Resolve(ctx context.Context, repositoryID, ref string) (*secondary.CommitRecord, error) {
	var matches []*secondary.CommitRecord
	for _, c := range m.commits {
		if c.RepositoryID != repositoryID {
			continue
		}
		if commit.Normalize(c.Hash) == commit.Normalize(ref) {
			return c, nil
		}
		if prefixOf(ref, c.Hash) {
			matches = append(matches, c)
		}
	}
	if len(matches) != 1 {
		return nil, nil
	}
	return matches[0], nil
}

func (m *mockCommitRepository) List(ctx context.Context, repositoryID string) ([]*secondary.CommitRecord, error) {
	var result []*secondary.CommitRecord
	for _, c := range m.commits {
		if c.RepositoryID == repositoryID {
			result = append(result, c)
		}
	}
	return result, nil
}

// prefixOf reports whether ref abbreviates hash.
func prefixOf(ref, hash string) bool {
	ref = commit.Normalize(ref)
	return ref != "" && strings.HasPrefix(commit.Normalize(hash), ref)
}

// mockGitReader implements secondary.GitReader for testing.
type mockGitReader struct {
	commits     map[string]*secondary.CommitInfo // keyed by full hash
	origin      string
	validateErr error
	readErr     map[string]error // keyed by ref
}

func newMockGitReader() *mockGitReader {
	return &mockGitReader{
		commits: make(map[string]*secondary.CommitInfo),
		readErr: make(map[string]error),
	}
}

func (m *mockGitReader) Validate(ctx context.Context, path string) error {
	return m.validateErr
}

func (m *mockGitReader) OriginURL(ctx context.Context, path string) (string, error) {
	if m.origin == "" {
		return "", fmt.Errorf("no origin remote")
	}
	return m.origin, nil
}

func (m *mockGitReader) ReadCommit(ctx context.Context, path, ref string) (*secondary.CommitInfo, error) {
	if err, ok := m.readErr[ref]; ok {
		return nil, err
	}
	var found *secondary.CommitInfo
	for hash, info := range m.commits {
		if prefixOf(ref, hash) {
			if found != nil {
				return nil, fmt.Errorf("%q: %w", ref, secondary.ErrCommitNotFound)
			}
			found = info
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%q: %w", ref, secondary.ErrCommitNotFound)
	}
	copied := *found
	return &copied, nil
}

// mockAgentRepository implements secondary.AgentRepository for testing.
type mockAgentRepository struct {
	rules      []*secondary.AgentRuleRecord
	prompts    []*secondary.PromptRecord
	replaceErr error
}

func (m *mockAgentRepository) ListRules(ctx context.Context) ([]*secondary.AgentRuleRecord, error) {
	return m.rules, nil
}

func (m *mockAgentRepository) ListPrompts(ctx context.Context) ([]*secondary.PromptRecord, error) {
	return m.prompts, nil
}

func (m *mockAgentRepository) ReplaceAll(ctx context.Context, rules []*secondary.AgentRuleRecord, prompts []*secondary.PromptRecord) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.rules = rules
	m.prompts = prompts
	return nil
}

// mockStatsRepository implements secondary.StatsRepository for testing.
type mockStatsRepository struct {
	stats *secondary.StatsRecord
	err   error
}

func (m *mockStatsRepository) GetStats(ctx context.Context) (*secondary.StatsRecord, error) {
	return m.stats, m.err
}

// mockLoadoutStore implements secondary.LoadoutStore for testing.
type mockLoadoutStore struct {
	loadouts map[string]*loadout.Loadout
}

func newMockLoadoutStore() *mockLoadoutStore {
	return &mockLoadoutStore{loadouts: make(map[string]*loadout.Loadout)}
}

func (m *mockLoadoutStore) List(ctx context.Context) ([]string, error) {
	names := []string{}
	for name := range m.loadouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *mockLoadoutStore) Get(ctx context.Context, name string) (*loadout.Loadout, error) {
	return m.loadouts[name], nil
}

func (m *mockLoadoutStore) Save(ctx context.Context, l *loadout.Loadout) error {
	m.loadouts[l.Name] = l
	return nil
}

func (m *mockLoadoutStore) Delete(ctx context.Context, name string) error {
	if _, ok := m.loadouts[name]; !ok {
		return fmt.Errorf("loadout %s not found", name)
	}
	delete(m.loadouts, name)
	return nil
}

// mockRegistryStore implements secondary.RegistryFileStore in memory.
type mockRegistryStore struct {
	registry *config.RegistryFile
	saves    int
}

func newMockRegistryStore() *mockRegistryStore {
	return &mockRegistryStore{registry: config.NewRegistryFile()}
}

func (m *mockRegistryStore) Path() string {
	return "/tmp/contrack/config.toml"
}

func (m *mockRegistryStore) Load(ctx context.Context) (*config.RegistryFile, error) {
	copied := config.NewRegistryFile()
	for k, v := range m.registry.Organizations {
		copied.Organizations[k] = v
	}
	for k, v := range m.registry.Repositories {
		copied.Repositories[k] = v
	}
	return copied, nil
}

func (m *mockRegistryStore) Save(ctx context.Context, registry *config.RegistryFile) error {
	m.saves++
	m.registry = registry
	return nil
}
