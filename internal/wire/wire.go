// Package wire provides dependency injection for contrack.
// Each command opens one App, uses its services and closes it.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	cliadapter "github.com/example/contrack/internal/adapters/cli"
	"github.com/example/contrack/internal/adapters/filesystem"
	"github.com/example/contrack/internal/adapters/git"
	"github.com/example/contrack/internal/adapters/sqlite"
	"github.com/example/contrack/internal/app"
	"github.com/example/contrack/internal/config"
	"github.com/example/contrack/internal/db"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/logging"
	"github.com/example/contrack/internal/ports/primary"
)

// Options control how an App is opened.
type Options struct {
	Cwd        string       // directory the .contrack walk-up starts from
	DBOverride string       // --db flag; takes precedence over settings
	Settings   *config.Settings
	Logger     *slog.Logger // nil discards logs
}

// App holds the open database and every service built on it.
type App struct {
	Locations *config.Locations
	Settings  *config.Settings
	DB        *sql.DB

	RepositoryService   primary.RepositoryService
	ContributionService primary.ContributionService
	SyncService         primary.SyncService
	DocumentService     primary.DocumentService
	StatsService        primary.StatsService
	ConfigService       primary.ConfigService
	LoadoutService      primary.LoadoutService
	AgentService        primary.AgentService
}

// Open resolves the database location, opens the store and builds the services.
func Open(ctx context.Context, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	settings := opts.Settings
	if settings == nil {
		loaded, err := config.LoadSettings(opts.Cwd)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeConfigFailed, "failed to load settings", err)
		}
		settings = loaded
	}

	override := opts.DBOverride
	if override == "" {
		override = settings.DBPath
	}
	loc, err := config.ResolveLocations(opts.Cwd, override)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfigFailed, "failed to resolve database location", err)
	}

	logger.Debug("opening database", "path", loc.Database, "source", loc.Source, "driver", settings.DBDriver)
	database, err := db.Open(ctx, loc.Database, settings.DBDriver)
	if err != nil {
		return nil, apperrors.Storage("failed to open database", err)
	}

	return build(database, loc, settings, logger), nil
}

// build wires adapters (secondary ports) into services (primary ports).
func build(database *sql.DB, loc *config.Locations, settings *config.Settings, logger *slog.Logger) *App {
	repoRepo := sqlite.NewRepositoryRepository(database)
	contributionRepo := sqlite.NewContributionRepository(database)
	commitRepo := sqlite.NewCommitRepository(database)
	agentRepo := sqlite.NewAgentRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)
	gitReader := git.NewReader()
	loadoutStore := filesystem.NewLoadoutStore(loc.LoadoutDir())
	registryStore := filesystem.NewRegistryFileStore(loc.RegistryPath())

	repositoryService := app.NewRepositoryService(repoRepo, logger)

	return &App{
		Locations: loc,
		Settings:  settings,
		DB:        database,

		RepositoryService:   repositoryService,
		ContributionService: app.NewContributionService(repoRepo, contributionRepo, commitRepo, logger),
		SyncService:         app.NewSyncService(repoRepo, contributionRepo, commitRepo, gitReader, logger),
		DocumentService:     app.NewDocumentService(repoRepo, contributionRepo, commitRepo, logger),
		StatsService:        app.NewStatsService(statsRepo),
		ConfigService:       app.NewConfigService(repositoryService, registryStore, logger),
		LoadoutService:      app.NewLoadoutService(agentRepo, loadoutStore, logger),
		AgentService:        app.NewAgentService(agentRepo, loc.Database),
	}
}

// Close releases the database handle.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Adapters are stateless translators; each call creates a new one.

// RepositoryAdapter returns a RepositoryAdapter writing to out.
func (a *App) RepositoryAdapter(out io.Writer) *cliadapter.RepositoryAdapter {
	return cliadapter.NewRepositoryAdapter(a.RepositoryService, out)
}

// ContributionAdapter returns a ContributionAdapter writing to out.
func (a *App) ContributionAdapter(out io.Writer) *cliadapter.ContributionAdapter {
	return cliadapter.NewContributionAdapter(a.ContributionService, out)
}

// SyncAdapter returns a SyncAdapter writing to out.
func (a *App) SyncAdapter(out io.Writer) *cliadapter.SyncAdapter {
	return cliadapter.NewSyncAdapter(a.SyncService, out)
}

// DocumentAdapter returns a DocumentAdapter writing status lines to out.
func (a *App) DocumentAdapter(out io.Writer) *cliadapter.DocumentAdapter {
	return cliadapter.NewDocumentAdapter(a.DocumentService, out)
}

// StatsAdapter returns a StatsAdapter writing to out.
func (a *App) StatsAdapter(out io.Writer) *cliadapter.StatsAdapter {
	return cliadapter.NewStatsAdapter(a.StatsService, out)
}

// ConfigAdapter returns a ConfigAdapter writing to out.
func (a *App) ConfigAdapter(out io.Writer) *cliadapter.ConfigAdapter {
	return cliadapter.NewConfigAdapter(a.ConfigService, out)
}

// LoadoutAdapter returns a LoadoutAdapter writing to out.
func (a *App) LoadoutAdapter(out io.Writer) *cliadapter.LoadoutAdapter {
	return cliadapter.NewLoadoutAdapter(a.LoadoutService, out)
}

// AgentAdapter returns an AgentAdapter writing to out.
func (a *App) AgentAdapter(out io.Writer) *cliadapter.AgentAdapter {
	return cliadapter.NewAgentAdapter(a.AgentService, out)
}
