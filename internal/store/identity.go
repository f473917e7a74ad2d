package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/logging"
	"github.com/rzeqiri/jobportal/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// socialProviders is the closed set accepted by SocialSignIn.
var socialProviders = map[string]string{
	"google":   "Google User",
	"linkedin": "LinkedIn User",
}

// IdentityStore owns the user roster and the session singleton. Every other
// store consults it to resolve "who is asking" and to derive the caller's
// role. Emails are stored lower-cased and are unique case-insensitively.
type IdentityStore struct {
	kv         kv.Store
	adminEmail string
	log        logging.Logger
}

// NewIdentityStore builds an IdentityStore. adminEmail is the distinguished
// address that always resolves to the admin role and whose account can
// never be deleted or altered.
func NewIdentityStore(s kv.Store, adminEmail string, log logging.Logger) *IdentityStore {
	return &IdentityStore{kv: s, adminEmail: strings.ToLower(adminEmail), log: log}
}

// SignUpParams are the self-service registration inputs.
type SignUpParams struct {
	FullName string
	Email    string
	Password string
	Role     models.Role
}

// GoogleProfile is the identity payload from a Google sign-in.
type GoogleProfile struct {
	Email    string
	FullName string
	Picture  string
	GoogleID string
}

// UserUpdate carries the admin-editable user fields. Zero-valued fields are
// left untouched.
type UserUpdate struct {
	FullName string
	Email    string
	Role     models.Role
}

func (s *IdentityStore) users(ctx context.Context) []models.User {
	return kv.ReadJSON(ctx, s.kv, usersKey, []models.User{})
}

func (s *IdentityStore) saveUsers(ctx context.Context, users []models.User) error {
	return kv.WriteJSON(ctx, s.kv, usersKey, users)
}

func (s *IdentityStore) startSession(ctx context.Context, userID string) error {
	return kv.WriteJSON(ctx, s.kv, sessionKey, models.Session{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	})
}

// RoleOf derives the effective role of a user: the distinguished admin
// email always resolves to admin, a record without a role defaults to
// jobseeker. Pure; never consults storage.
func (s *IdentityStore) RoleOf(u *models.User) models.Role {
	if u == nil {
		return ""
	}
	if u.Email == s.adminEmail {
		return models.RoleAdmin
	}
	if u.Role == "" {
		return models.RoleJobseeker
	}
	return u.Role
}

// IsAdmin reports whether u resolves to the admin role.
func (s *IdentityStore) IsAdmin(u *models.User) bool {
	return s.RoleOf(u) == models.RoleAdmin
}

// IsEmployer reports whether u may act as an employer. Admins pass.
func (s *IdentityStore) IsEmployer(u *models.User) bool {
	role := s.RoleOf(u)
	return role == models.RoleEmployer || role == models.RoleAdmin
}

// IsJobseeker reports whether u may act as a jobseeker. Admins pass.
func (s *IdentityStore) IsJobseeker(u *models.User) bool {
	role := s.RoleOf(u)
	return role == models.RoleJobseeker || role == models.RoleAdmin
}

// CurrentUser resolves the session pointer to a roster entry. It returns
// nil when no session exists or the pointed-at user is gone.
func (s *IdentityStore) CurrentUser(ctx context.Context) *models.User {
	session := kv.ReadJSON[*models.Session](ctx, s.kv, sessionKey, nil)
	if session == nil || session.UserID == "" {
		return nil
	}
	for _, u := range s.users(ctx) {
		if u.ID == session.UserID {
			return &u
		}
	}
	return nil
}

// IsAuthenticated reports whether a session resolves to a user.
func (s *IdentityStore) IsAuthenticated(ctx context.Context) bool {
	return s.CurrentUser(ctx) != nil
}

// SignUp validates the inputs, creates the user, and establishes a session.
// The email is normalized to lower case and must be unique; registering the
// distinguished admin address forces the admin role regardless of the
// requested one.
func (s *IdentityStore) SignUp(ctx context.Context, p SignUpParams) (*models.User, error) {
	name := strings.TrimSpace(p.FullName)
	email := strings.ToLower(strings.TrimSpace(p.Email))

	if name == "" {
		return nil, validationErr("Full name is required.")
	}
	if email == "" {
		return nil, validationErr("Email is required.")
	}
	if !emailPattern.MatchString(email) {
		return nil, validationErr("Please enter a valid email.")
	}
	if len(p.Password) < 6 {
		return nil, validationErr("Password must be at least 6 characters.")
	}
	if p.Role != models.RoleEmployer && p.Role != models.RoleJobseeker {
		return nil, validationErr("Invalid role")
	}

	users := s.users(ctx)
	for _, u := range users {
		if u.Email == email {
			return nil, conflictErr("An account with this email already exists.")
		}
	}

	role := p.Role
	if email == s.adminEmail {
		role = models.RoleAdmin
	}

	user := models.User{
		ID:        uuid.NewString(),
		FullName:  name,
		Email:     email,
		Password:  p.Password,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.saveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}
	if err := s.startSession(ctx, user.ID); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user signed up", "email", user.Email, "role", role)
	return &user, nil
}

// SignIn checks the credentials and establishes a session. The failure
// message is identical for an unknown email and a wrong password so the
// caller cannot tell which part failed.
func (s *IdentityStore) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	mail := strings.ToLower(strings.TrimSpace(email))
	if mail == "" {
		return nil, validationErr("Email is required.")
	}
	if password == "" {
		return nil, validationErr("Password is required.")
	}

	for _, u := range s.users(ctx) {
		if u.Email == mail {
			if u.Password != password {
				break
			}
			if err := s.startSession(ctx, u.ID); err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, authErr("Invalid email or password.")
}

// SignOut deletes the session. Idempotent: signing out without a session
// succeeds.
func (s *IdentityStore) SignOut(ctx context.Context) error {
	return s.kv.Delete(ctx, sessionKey)
}

// SocialSignIn creates a demo account for the given provider and signs it
// in. Only google and linkedin are supported.
func (s *IdentityStore) SocialSignIn(ctx context.Context, provider string) (*models.User, error) {
	displayName, ok := socialProviders[provider]
	if !ok {
		return nil, validationErr("Unsupported provider")
	}

	user := models.User{
		ID:        uuid.NewString(),
		FullName:  displayName,
		Email:     fmt.Sprintf("%s.user.%d@example.com", provider, time.Now().UnixMilli()),
		Provider:  provider,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.saveUsers(ctx, append(s.users(ctx), user)); err != nil {
		return nil, err
	}
	if err := s.startSession(ctx, user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

// GoogleSignIn creates or links an account by email and signs it in. An
// existing account keeps its password and role and gains the Google fields.
func (s *IdentityStore) GoogleSignIn(ctx context.Context, p GoogleProfile) (*models.User, error) {
	if p.Email == "" {
		return nil, validationErr("Email is required")
	}
	mail := strings.ToLower(strings.TrimSpace(p.Email))

	users := s.users(ctx)
	for i := range users {
		if users[i].Email != mail {
			continue
		}
		users[i].GoogleID = p.GoogleID
		users[i].Picture = p.Picture
		if users[i].Provider == "" {
			users[i].Provider = "google"
		}
		if err := s.saveUsers(ctx, users); err != nil {
			return nil, err
		}
		if err := s.startSession(ctx, users[i].ID); err != nil {
			return nil, err
		}
		return &users[i], nil
	}

	fullName := p.FullName
	if fullName == "" {
		fullName = strings.SplitN(mail, "@", 2)[0]
	}
	role := models.RoleJobseeker
	if mail == s.adminEmail {
		role = models.RoleAdmin
	}
	user := models.User{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Email:     mail,
		GoogleID:  p.GoogleID,
		Picture:   p.Picture,
		Provider:  "google",
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.saveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}
	if err := s.startSession(ctx, user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

// AllUsers returns the roster with derived roles. Admin only.
func (s *IdentityStore) AllUsers(ctx context.Context) ([]models.UserSummary, error) {
	if !s.IsAdmin(s.CurrentUser(ctx)) {
		return nil, authzErr("Only admins can view users")
	}

	users := s.users(ctx)
	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, models.UserSummary{
			ID:        u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			Role:      s.RoleOf(u),
			CreatedAt: u.CreatedAt,
			IsAdmin:   u.Email == s.adminEmail,
		})
	}
	return out, nil
}

// UpdateUser applies admin edits to a user. Only the full name and role are
// mutable; the admin account's email and role cannot change no matter who
// calls, including the admin itself.
func (s *IdentityStore) UpdateUser(ctx context.Context, userID string, upd UserUpdate) error {
	if !s.IsAdmin(s.CurrentUser(ctx)) {
		return authzErr("Only admins can update users")
	}

	users := s.users(ctx)
	idx := indexOfUser(users, userID)
	if idx == -1 {
		return notFoundErr("User not found")
	}

	if users[idx].Email == s.adminEmail && upd.Email != "" && strings.ToLower(upd.Email) != s.adminEmail {
		return authzErr("Cannot change admin email")
	}

	if upd.FullName != "" {
		users[idx].FullName = upd.FullName
	}
	if upd.Role != "" && users[idx].Email != s.adminEmail {
		users[idx].Role = upd.Role
	}
	return s.saveUsers(ctx, users)
}

// DeleteUser removes a user and cascades to every per-user namespace:
// saved jobs, applications, profile, and settings. The admin account is
// undeletable. Admin only.
func (s *IdentityStore) DeleteUser(ctx context.Context, userID string) error {
	if !s.IsAdmin(s.CurrentUser(ctx)) {
		return authzErr("Only admins can delete users")
	}

	users := s.users(ctx)
	idx := indexOfUser(users, userID)
	if idx == -1 {
		return notFoundErr("User not found")
	}
	if users[idx].Email == s.adminEmail {
		return authzErr("Cannot delete admin account")
	}

	if err := s.saveUsers(ctx, append(users[:idx], users[idx+1:]...)); err != nil {
		return err
	}

	for _, key := range []string{savedKey(userID), appliedKey(userID), profileKey(userID), settingsKey(userID)} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}

	s.log.Info(ctx, "user deleted", "userId", userID)
	return nil
}

// SetUserRole changes a user's stored role. The admin account's role is
// fixed. Admin only.
func (s *IdentityStore) SetUserRole(ctx context.Context, userID string, role models.Role) error {
	if role != models.RoleAdmin && role != models.RoleEmployer && role != models.RoleJobseeker {
		return validationErr("Invalid role")
	}
	if !s.IsAdmin(s.CurrentUser(ctx)) {
		return authzErr("Only admins can change roles")
	}

	users := s.users(ctx)
	idx := indexOfUser(users, userID)
	if idx == -1 {
		return notFoundErr("User not found")
	}
	if users[idx].Email == s.adminEmail {
		return authzErr("Cannot change admin role")
	}

	users[idx].Role = role
	return s.saveUsers(ctx, users)
}

// SystemStats aggregates roster, job, and review counts. Admin only.
func (s *IdentityStore) SystemStats(ctx context.Context) (*models.SystemStats, error) {
	if !s.IsAdmin(s.CurrentUser(ctx)) {
		return nil, authzErr("Only admins can view stats")
	}

	users := s.users(ctx)
	jobs := kv.ReadJSON(ctx, s.kv, customJobsKey, []models.Job{})
	reviews := kv.ReadJSON(ctx, s.kv, reviewsKey, []models.Review{})

	stats := &models.SystemStats{
		TotalUsers: len(users),
		RoleStats: map[models.Role]int{
			models.RoleAdmin:     0,
			models.RoleEmployer:  0,
			models.RoleJobseeker: 0,
		},
		TotalJobs:    len(jobs),
		TotalReviews: len(reviews),
	}
	for i := range users {
		stats.RoleStats[s.RoleOf(&users[i])]++
	}
	if len(users) > 0 {
		last := users[len(users)-1].CreatedAt
		stats.LastUserRegistered = &last
	}
	return stats, nil
}

// UserSettings returns the current user's free-form settings map, empty
// when unauthenticated or unset.
func (s *IdentityStore) UserSettings(ctx context.Context) map[string]any {
	user := s.CurrentUser(ctx)
	if user == nil {
		return map[string]any{}
	}
	return kv.ReadJSON(ctx, s.kv, settingsKey(user.ID), map[string]any{})
}

// SaveUserSettings replaces the current user's settings map.
func (s *IdentityStore) SaveUserSettings(ctx context.Context, settings map[string]any) error {
	user := s.CurrentUser(ctx)
	if user == nil {
		return authErr("Not authenticated")
	}
	return kv.WriteJSON(ctx, s.kv, settingsKey(user.ID), settings)
}

func indexOfUser(users []models.User, userID string) int {
	for i := range users {
		if users[i].ID == userID {
			return i
		}
	}
	return -1
}
