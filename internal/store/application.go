package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/models"
)

// ApplicationStore owns the job-application lifecycle: per-user application
// lists under applied_<userId>, the status machine, and the employer-facing
// aggregation across all users' applications.
type ApplicationStore struct {
	kv        kv.Store
	identity  *IdentityStore
	profiles  *ProfileStore
	analytics *AnalyticsStore
	jobs      *CustomJobStore
}

// NewApplicationStore builds an ApplicationStore wired to its collaborator
// stores.
func NewApplicationStore(s kv.Store, identity *IdentityStore, profiles *ProfileStore, analytics *AnalyticsStore, jobs *CustomJobStore) *ApplicationStore {
	return &ApplicationStore{kv: s, identity: identity, profiles: profiles, analytics: analytics, jobs: jobs}
}

// ApplyOptions carries the optional inputs of ApplyWithProfile.
type ApplyOptions struct {
	CoverLetter string
	UseResume   bool
}

func (s *ApplicationStore) applied(ctx context.Context, userID string) []models.Application {
	return kv.ReadJSON(ctx, s.kv, appliedKey(userID), []models.Application{})
}

// Applied returns the current user's applications, newest first, nil when
// unauthenticated.
func (s *ApplicationStore) Applied(ctx context.Context) []models.Application {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return nil
	}
	return s.applied(ctx, user.ID)
}

// HasApplied reports whether the current user already applied to the job.
func (s *ApplicationStore) HasApplied(ctx context.Context, jobID string) bool {
	for _, app := range s.Applied(ctx) {
		if app.JobID == jobID {
			return true
		}
	}
	return false
}

// Apply records a pending application for the current user. Employers
// cannot apply. Applying twice to the same job is not an error and leaves
// exactly one application record.
func (s *ApplicationStore) Apply(ctx context.Context, jobID string) (*models.Application, error) {
	return s.apply(ctx, jobID, nil)
}

// ApplyWithProfile records an application carrying a point-in-time snapshot
// of the caller's profile plus an optional cover letter, and bumps the
// job's application counter. Later profile edits never alter the snapshot.
func (s *ApplicationStore) ApplyWithProfile(ctx context.Context, jobID string, opts ApplyOptions) (*models.Application, error) {
	return s.apply(ctx, jobID, &opts)
}

func (s *ApplicationStore) apply(ctx context.Context, jobID string, opts *ApplyOptions) (*models.Application, error) {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return nil, authErr("Not authenticated")
	}
	if s.identity.RoleOf(user) == models.RoleEmployer {
		return nil, authzErr("Employers cannot apply to jobs")
	}

	key := appliedKey(user.ID)
	current := kv.ReadJSON(ctx, s.kv, key, []models.Application{})
	for i := range current {
		if current[i].JobID == jobID {
			// Idempotent: re-applying returns the existing record.
			return &current[i], nil
		}
	}

	app := models.Application{
		ID:        uuid.NewString(),
		JobID:     jobID,
		AppliedAt: time.Now().UTC(),
		Status:    models.StatusPending,
	}
	if opts != nil {
		profile := s.profiles.profileFor(ctx, user.ID)
		app.Profile = &models.ApplicantSnapshot{
			FullName:       profile.FullName,
			Email:          user.Email,
			Phone:          profile.Phone,
			Location:       profile.Location,
			Skills:         profile.Skills,
			Experience:     profile.Experience,
			WorkExperience: profile.WorkExperience,
			Education:      profile.Education,
		}
		app.CoverLetter = opts.CoverLetter
		app.HasResume = opts.UseResume && profile.ResumeFile != nil
	}

	next := append([]models.Application{app}, current...)
	if err := kv.WriteJSON(ctx, s.kv, key, next); err != nil {
		return nil, err
	}

	if opts != nil {
		if err := s.analytics.TrackApplication(ctx, jobID); err != nil {
			return nil, err
		}
	}
	return &app, nil
}

// UpdateStatus moves the current user's own application to the given
// status. Any of the five statuses may follow any other.
func (s *ApplicationStore) UpdateStatus(ctx context.Context, jobID string, status models.ApplicationStatus) error {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return authErr("Not authenticated")
	}
	return s.setStatus(ctx, user.ID, jobID, status, "")
}

// Status returns the current user's application status for the job, empty
// when no application exists.
func (s *ApplicationStore) Status(ctx context.Context, jobID string) models.ApplicationStatus {
	for _, app := range s.Applied(ctx) {
		if app.JobID == jobID {
			return app.Status
		}
	}
	return ""
}

// Remove withdraws the current user's application to the job.
func (s *ApplicationStore) Remove(ctx context.Context, jobID string) error {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return authErr("Not authenticated")
	}
	key := appliedKey(user.ID)
	current := kv.ReadJSON(ctx, s.kv, key, []models.Application{})
	next := current[:0]
	for _, app := range current {
		if app.JobID != jobID {
			next = append(next, app)
		}
	}
	return kv.WriteJSON(ctx, s.kv, key, next)
}

// Clear withdraws all of the current user's applications.
func (s *ApplicationStore) Clear(ctx context.Context) error {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return authErr("Not authenticated")
	}
	return kv.WriteJSON(ctx, s.kv, appliedKey(user.ID), []models.Application{})
}

// ForEmployer aggregates applications across every user, joined against
// jobs and enriched with applicant data, newest first. Admins see every
// application against the union of custom and caller-supplied static jobs;
// employers see only applications to jobs they posted. Any other role gets
// an empty result.
func (s *ApplicationStore) ForEmployer(ctx context.Context, staticJobs []models.Job) []models.EmployerApplication {
	user := s.identity.CurrentUser(ctx)
	role := s.identity.RoleOf(user)
	if role != models.RoleEmployer && role != models.RoleAdmin {
		return nil
	}

	customJobs := s.jobs.Jobs(ctx)

	var employerJobs []models.Job
	jobIDs := make(map[string]struct{})
	if role == models.RoleAdmin {
		employerJobs = append(append([]models.Job{}, customJobs...), staticJobs...)
	} else {
		for _, j := range customJobs {
			if j.PostedBy == user.ID {
				employerJobs = append(employerJobs, j)
			}
		}
	}
	for _, j := range employerJobs {
		jobIDs[j.ID] = struct{}{}
	}
	if len(jobIDs) == 0 && role != models.RoleAdmin {
		return nil
	}

	var out []models.EmployerApplication
	for _, u := range s.identity.users(ctx) {
		for _, app := range s.applied(ctx, u.ID) {
			if role != models.RoleAdmin {
				if _, ok := jobIDs[app.JobID]; !ok {
					continue
				}
			}

			job := models.Job{ID: app.JobID, Title: "Unknown Job"}
			for _, j := range employerJobs {
				if j.ID == app.JobID {
					job = j
					break
				}
			}

			profile := s.profiles.profileFor(ctx, u.ID)
			out = append(out, models.EmployerApplication{
				Application: app,
				Applicant:   buildApplicant(u, app, profile),
				Job:         job,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out
}

// UpdateStatusByEmployer moves another user's application to the given
// status. The caller must be admin or the employer of record for the job
// (the posting's PostedBy must match). Records who made the change.
func (s *ApplicationStore) UpdateStatusByEmployer(ctx context.Context, applicantID, jobID string, status models.ApplicationStatus) error {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return authErr("Not authenticated")
	}
	role := s.identity.RoleOf(user)
	if role != models.RoleEmployer && role != models.RoleAdmin {
		return authzErr("Not authorized")
	}
	if !models.ValidStatus(status) {
		return validationErr("Invalid status")
	}

	if role != models.RoleAdmin {
		owned := false
		for _, j := range s.jobs.Jobs(ctx) {
			if j.ID == jobID && j.PostedBy == user.ID {
				owned = true
				break
			}
		}
		if !owned {
			return authzErr("Job not found or not authorized")
		}
	}

	return s.setStatus(ctx, applicantID, jobID, status, user.ID)
}

func (s *ApplicationStore) setStatus(ctx context.Context, userID, jobID string, status models.ApplicationStatus, updatedBy string) error {
	if !models.ValidStatus(status) {
		return validationErr("Invalid status")
	}

	key := appliedKey(userID)
	current := kv.ReadJSON(ctx, s.kv, key, []models.Application{})
	for i := range current {
		if current[i].JobID != jobID {
			continue
		}
		now := time.Now().UTC()
		current[i].Status = status
		current[i].StatusUpdatedAt = &now
		if updatedBy != "" {
			current[i].UpdatedBy = updatedBy
		}
		return kv.WriteJSON(ctx, s.kv, key, current)
	}
	return notFoundErr("Application not found")
}

// buildApplicant merges applicant data for the employer view, preferring
// the apply-time snapshot over the live profile over the bare user record.
func buildApplicant(u models.User, app models.Application, profile models.Profile) models.Applicant {
	applicant := models.Applicant{
		ID:             u.ID,
		FullName:       firstNonEmpty(profile.FullName, u.FullName, "Unknown"),
		Email:          u.Email,
		Phone:          profile.Phone,
		Location:       profile.Location,
		Bio:            profile.Bio,
		PhotoURL:       profile.PhotoURL,
		Skills:         profile.Skills,
		Experience:     profile.Experience,
		WorkExperience: profile.WorkExperience,
		Education:      profile.Education,
		HasResume:      app.HasResume || profile.ResumeFile != nil,
		Resume:         profile.ResumeFile,
	}

	if snap := app.Profile; snap != nil {
		if snap.FullName != "" {
			applicant.FullName = snap.FullName
		}
		if snap.Email != "" {
			applicant.Email = snap.Email
		}
		if snap.Phone != "" {
			applicant.Phone = snap.Phone
		}
		if snap.Location != "" {
			applicant.Location = snap.Location
		}
		if len(snap.Skills) > 0 {
			applicant.Skills = snap.Skills
		}
		if snap.Experience != "" {
			applicant.Experience = snap.Experience
		}
		if len(snap.WorkExperience) > 0 {
			applicant.WorkExperience = snap.WorkExperience
		}
		if len(snap.Education) > 0 {
			applicant.Education = snap.Education
		}
	}

	if applicant.Skills == nil {
		applicant.Skills = []string{}
	}
	if applicant.WorkExperience == nil {
		applicant.WorkExperience = []models.WorkExperience{}
	}
	if applicant.Education == nil {
		applicant.Education = []models.Education{}
	}
	return applicant
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
