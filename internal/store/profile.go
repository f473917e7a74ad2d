package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/models"
)

// ProfileStore manages the current user's profile record: contact info,
// photo, résumé, and the work-experience/education sub-records. The record
// lives whole under profile_<userId> and is independent of the session
// lifecycle.
type ProfileStore struct {
	kv       kv.Store
	identity *IdentityStore
}

// NewProfileStore builds a ProfileStore over the shared namespace.
func NewProfileStore(s kv.Store, identity *IdentityStore) *ProfileStore {
	return &ProfileStore{kv: s, identity: identity}
}

// profileFor reads any user's profile by id. Used by the employer view to
// enrich applications with live profile data.
func (s *ProfileStore) profileFor(ctx context.Context, userID string) models.Profile {
	return kv.ReadJSON(ctx, s.kv, profileKey(userID), models.Profile{})
}

// Get returns the current user's profile, zero-valued when unauthenticated
// or never saved.
func (s *ProfileStore) Get(ctx context.Context) models.Profile {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return models.Profile{}
	}
	return s.profileFor(ctx, user.ID)
}

// Save replaces the current user's profile record.
func (s *ProfileStore) Save(ctx context.Context, p models.Profile) error {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return authErr("Not authenticated")
	}
	return kv.WriteJSON(ctx, s.kv, profileKey(user.ID), p)
}

// PhotoURL returns the stored profile photo URL, empty when unset.
func (s *ProfileStore) PhotoURL(ctx context.Context) string {
	return s.Get(ctx).PhotoURL
}

// SetPhoto stores the profile photo URL (typically a data URL).
func (s *ProfileStore) SetPhoto(ctx context.Context, url string) error {
	return s.update(ctx, func(p *models.Profile) error {
		p.PhotoURL = url
		return nil
	})
}

// Resume returns the stored résumé, nil when unset.
func (s *ProfileStore) Resume(ctx context.Context) *models.ResumeFile {
	return s.Get(ctx).ResumeFile
}

// SetResume stores the résumé inline in the profile record.
func (s *ProfileStore) SetResume(ctx context.Context, f *models.ResumeFile) error {
	return s.update(ctx, func(p *models.Profile) error {
		p.ResumeFile = f
		return nil
	})
}

// WorkExperience lists the work-experience sub-records, newest first.
func (s *ProfileStore) WorkExperience(ctx context.Context) []models.WorkExperience {
	return s.Get(ctx).WorkExperience
}

// AddWorkExperience prepends a sub-record with a generated id.
func (s *ProfileStore) AddWorkExperience(ctx context.Context, exp models.WorkExperience) (*models.WorkExperience, error) {
	exp.ID = uuid.NewString()
	exp.CreatedAt = time.Now().UTC()
	err := s.update(ctx, func(p *models.Profile) error {
		p.WorkExperience = append([]models.WorkExperience{exp}, p.WorkExperience...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// UpdateWorkExperience merges the non-empty fields of upd into the
// sub-record with the given id.
func (s *ProfileStore) UpdateWorkExperience(ctx context.Context, id string, upd models.WorkExperience) error {
	return s.update(ctx, func(p *models.Profile) error {
		for i := range p.WorkExperience {
			if p.WorkExperience[i].ID != id {
				continue
			}
			mergeWorkExperience(&p.WorkExperience[i], upd)
			return nil
		}
		return notFoundErr("Not found")
	})
}

// RemoveWorkExperience deletes the sub-record with the given id. Removing
// an id that is already gone succeeds.
func (s *ProfileStore) RemoveWorkExperience(ctx context.Context, id string) error {
	return s.update(ctx, func(p *models.Profile) error {
		p.WorkExperience = deleteByID(p.WorkExperience, id, func(e models.WorkExperience) string { return e.ID })
		return nil
	})
}

// Education lists the education sub-records, newest first.
func (s *ProfileStore) Education(ctx context.Context) []models.Education {
	return s.Get(ctx).Education
}

// AddEducation prepends a sub-record with a generated id.
func (s *ProfileStore) AddEducation(ctx context.Context, edu models.Education) (*models.Education, error) {
	edu.ID = uuid.NewString()
	edu.CreatedAt = time.Now().UTC()
	err := s.update(ctx, func(p *models.Profile) error {
		p.Education = append([]models.Education{edu}, p.Education...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &edu, nil
}

// UpdateEducation merges the non-empty fields of upd into the sub-record
// with the given id.
func (s *ProfileStore) UpdateEducation(ctx context.Context, id string, upd models.Education) error {
	return s.update(ctx, func(p *models.Profile) error {
		for i := range p.Education {
			if p.Education[i].ID != id {
				continue
			}
			mergeEducation(&p.Education[i], upd)
			return nil
		}
		return notFoundErr("Not found")
	})
}

// RemoveEducation deletes the sub-record with the given id.
func (s *ProfileStore) RemoveEducation(ctx context.Context, id string) error {
	return s.update(ctx, func(p *models.Profile) error {
		p.Education = deleteByID(p.Education, id, func(e models.Education) string { return e.ID })
		return nil
	})
}

// update runs a read-modify-write cycle on the current user's profile.
func (s *ProfileStore) update(ctx context.Context, fn func(p *models.Profile) error) error {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return authErr("Not authenticated")
	}
	profile := s.profileFor(ctx, user.ID)
	if err := fn(&profile); err != nil {
		return err
	}
	return kv.WriteJSON(ctx, s.kv, profileKey(user.ID), profile)
}

func mergeWorkExperience(dst *models.WorkExperience, upd models.WorkExperience) {
	if upd.Title != "" {
		dst.Title = upd.Title
	}
	if upd.Company != "" {
		dst.Company = upd.Company
	}
	if upd.Period != "" {
		dst.Period = upd.Period
	}
	if upd.Description != "" {
		dst.Description = upd.Description
	}
}

func mergeEducation(dst *models.Education, upd models.Education) {
	if upd.Degree != "" {
		dst.Degree = upd.Degree
	}
	if upd.School != "" {
		dst.School = upd.School
	}
	if upd.Period != "" {
		dst.Period = upd.Period
	}
	if upd.Description != "" {
		dst.Description = upd.Description
	}
}

func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
