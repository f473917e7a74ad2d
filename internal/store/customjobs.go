package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/models"
)

// CustomJobStore keeps employer-submitted postings layered on top of the
// static catalog, newest first. The static catalog itself is supplied by
// presentation code and never stored here.
type CustomJobStore struct {
	kv       kv.Store
	identity *IdentityStore
}

// NewCustomJobStore builds a CustomJobStore over the shared namespace.
func NewCustomJobStore(s kv.Store, identity *IdentityStore) *CustomJobStore {
	return &CustomJobStore{kv: s, identity: identity}
}

// Jobs returns all custom postings, newest first.
func (s *CustomJobStore) Jobs(ctx context.Context) []models.Job {
	return kv.ReadJSON(ctx, s.kv, customJobsKey, []models.Job{})
}

// Add stores a posting with a generated id and today's posted date,
// attributed to the current user when one is signed in.
func (s *CustomJobStore) Add(ctx context.Context, job models.Job) (*models.Job, error) {
	job.ID = uuid.NewString()
	job.PostedDate = time.Now().UTC().Format("2006-01-02")
	if user := s.identity.CurrentUser(ctx); user != nil {
		job.PostedBy = user.ID
	}

	next := append([]models.Job{job}, s.Jobs(ctx)...)
	if err := kv.WriteJSON(ctx, s.kv, customJobsKey, next); err != nil {
		return nil, err
	}
	return &job, nil
}
