package store

import (
	"context"

	"github.com/rzeqiri/jobportal/internal/kv"
)

// SavedJobsStore keeps each user's set of bookmarked job ids under
// saved_<userId>, most recently saved first.
type SavedJobsStore struct {
	kv       kv.Store
	identity *IdentityStore
}

// NewSavedJobsStore builds a SavedJobsStore over the shared namespace.
func NewSavedJobsStore(s kv.Store, identity *IdentityStore) *SavedJobsStore {
	return &SavedJobsStore{kv: s, identity: identity}
}

// Saved returns the current user's saved job ids, nil when unauthenticated.
func (s *SavedJobsStore) Saved(ctx context.Context) []string {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return nil
	}
	return kv.ReadJSON(ctx, s.kv, savedKey(user.ID), []string{})
}

// IsSaved reports whether the job is bookmarked by the current user.
func (s *SavedJobsStore) IsSaved(ctx context.Context, jobID string) bool {
	for _, id := range s.Saved(ctx) {
		if id == jobID {
			return true
		}
	}
	return false
}

// Toggle bookmarks the job if it is not saved and removes it otherwise,
// returning the new saved state.
func (s *SavedJobsStore) Toggle(ctx context.Context, jobID string) (bool, error) {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return false, authErr("Not authenticated")
	}

	key := savedKey(user.ID)
	current := kv.ReadJSON(ctx, s.kv, key, []string{})

	next := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == jobID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append([]string{jobID}, current...)
	}

	if err := kv.WriteJSON(ctx, s.kv, key, next); err != nil {
		return false, err
	}
	return !removed, nil
}

// Clear empties the current user's saved jobs.
func (s *SavedJobsStore) Clear(ctx context.Context) error {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return authErr("Not authenticated")
	}
	return kv.WriteJSON(ctx, s.kv, savedKey(user.ID), []string{})
}
