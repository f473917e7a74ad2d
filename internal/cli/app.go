// Package cli implements the interactive job portal shell. Every store
// operation is reachable from a REPL command, which makes the package the
// integration surface for the whole state layer.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/rzeqiri/jobportal/internal/config"
	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/logging"
	"github.com/rzeqiri/jobportal/internal/store"
)

// App wires the stores to the interactive shell.
type App struct {
	config       *config.Config
	log          logging.Logger
	db           *sql.DB
	identity     *store.IdentityStore
	profiles     *store.ProfileStore
	applications *store.ApplicationStore
	saved        *store.SavedJobsStore
	reviews      *store.ReviewStore
	resets       *store.PasswordResetStore
	analytics    *store.AnalyticsStore
	jobs         *store.CustomJobStore
	reader       *bufio.Reader
}

// NewApp opens the database, applies migrations, and wires every store.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault()

	db, err := kv.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	ns := kv.NewSQLite(db)

	identity := store.NewIdentityStore(ns, cfg.AdminEmail, log)
	profiles := store.NewProfileStore(ns, identity)
	analytics := store.NewAnalyticsStore(ns)
	jobs := store.NewCustomJobStore(ns, identity)

	return &App{
		config:       cfg,
		log:          log,
		db:           db,
		identity:     identity,
		profiles:     profiles,
		applications: store.NewApplicationStore(ns, identity, profiles, analytics, jobs),
		saved:        store.NewSavedJobsStore(ns, identity),
		reviews:      store.NewReviewStore(ns, identity),
		resets:       store.NewPasswordResetStore(ns, identity, cfg.ResetTokenTTL, log),
		analytics:    analytics,
		jobs:         jobs,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.identity.IsAuthenticated(ctx)
}
