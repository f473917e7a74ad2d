package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/logging"
	"github.com/rzeqiri/jobportal/internal/models"
)

const testAdminEmail = "admin@jobportal.test"

// fixture wires every store over one in-memory namespace, the way the CLI
// wires them over SQLite.
type fixture struct {
	kv           *kv.Memory
	identity     *IdentityStore
	profiles     *ProfileStore
	applications *ApplicationStore
	saved        *SavedJobsStore
	reviews      *ReviewStore
	resets       *PasswordResetStore
	analytics    *AnalyticsStore
	jobs         *CustomJobStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ns := kv.NewMemory()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	identity := NewIdentityStore(ns, testAdminEmail, log)
	profiles := NewProfileStore(ns, identity)
	analytics := NewAnalyticsStore(ns)
	jobs := NewCustomJobStore(ns, identity)

	return &fixture{
		kv:           ns,
		identity:     identity,
		profiles:     profiles,
		applications: NewApplicationStore(ns, identity, profiles, analytics, jobs),
		saved:        NewSavedJobsStore(ns, identity),
		reviews:      NewReviewStore(ns, identity),
		resets:       NewPasswordResetStore(ns, identity, time.Hour, log),
		analytics:    analytics,
		jobs:         jobs,
	}
}

// signUp registers a user (establishing their session) and returns it.
func signUp(t *testing.T, f *fixture, name, email string, role models.Role) *models.User {
	t.Helper()
	user, err := f.identity.SignUp(context.Background(), SignUpParams{
		FullName: name,
		Email:    email,
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

// signUpAdmin registers the distinguished admin account.
func signUpAdmin(t *testing.T, f *fixture) *models.User {
	t.Helper()
	return signUp(t, f, "Admin", testAdminEmail, models.RoleJobseeker)
}

// signIn switches the session to an existing user.
func signIn(t *testing.T, f *fixture, email string) {
	t.Helper()
	_, err := f.identity.SignIn(context.Background(), email, "secret123")
	require.NoError(t, err)
}
