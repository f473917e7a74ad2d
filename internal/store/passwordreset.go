package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/logging"
	"github.com/rzeqiri/jobportal/internal/models"
	"github.com/rzeqiri/jobportal/internal/randx"
)

// GenericResetMessage is returned for every reset request so the response
// never reveals whether an account exists.
const GenericResetMessage = "If this email exists, you will receive reset instructions"

// PasswordResetStore issues and redeems single-use, time-limited password
// reset tokens. At most one live token exists per email; requesting a new
// one discards the old. The issued token is logged in place of delivery —
// the emulated backend has no mail channel.
type PasswordResetStore struct {
	kv       kv.Store
	identity *IdentityStore
	ttl      time.Duration
	log      logging.Logger
}

// NewPasswordResetStore builds a PasswordResetStore. ttl is how long an
// issued token stays redeemable.
func NewPasswordResetStore(s kv.Store, identity *IdentityStore, ttl time.Duration, log logging.Logger) *PasswordResetStore {
	return &PasswordResetStore{kv: s, identity: identity, ttl: ttl, log: log}
}

// Request issues a reset token for the email if an account exists. The
// returned token is empty for unknown emails; callers showing the result to
// a user must show GenericResetMessage either way.
func (s *PasswordResetStore) Request(ctx context.Context, email string) (string, error) {
	mail := strings.ToLower(strings.TrimSpace(email))
	if mail == "" {
		return "", validationErr("Email is required")
	}

	exists := false
	for _, u := range s.identity.users(ctx) {
		if u.Email == mail {
			exists = true
			break
		}
	}
	if !exists {
		return "", nil
	}

	token, err := randx.HexString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	tokens := kv.ReadJSON(ctx, s.kv, resetTokensKey, []models.ResetToken{})
	next := tokens[:0]
	for _, t := range tokens {
		if t.Email != mail {
			next = append(next, t)
		}
	}
	now := time.Now().UTC()
	next = append(next, models.ResetToken{
		Token:     token,
		Email:     mail,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	})

	if err := kv.WriteJSON(ctx, s.kv, resetTokensKey, next); err != nil {
		return "", err
	}

	s.log.Info(ctx, "password reset token issued", "email", mail, "token", token)
	return token, nil
}

// Reset redeems a token and overwrites the matched user's password. The
// token is deleted on success and cannot be redeemed twice.
func (s *PasswordResetStore) Reset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return validationErr("Invalid token")
	}
	if len(newPassword) < 6 {
		return validationErr("Password must be at least 6 characters")
	}

	tokens := kv.ReadJSON(ctx, s.kv, resetTokensKey, []models.ResetToken{})
	idx := -1
	for i := range tokens {
		if tokens[i].Token == token {
			idx = i
			break
		}
	}
	if idx == -1 {
		return notFoundErr("Invalid or expired token")
	}
	if time.Now().After(tokens[idx].ExpiresAt) {
		return expiredErr("Token has expired")
	}

	users := s.identity.users(ctx)
	userIdx := -1
	for i := range users {
		if users[i].Email == tokens[idx].Email {
			userIdx = i
			break
		}
	}
	if userIdx == -1 {
		return notFoundErr("User not found")
	}

	users[userIdx].Password = newPassword
	if err := s.identity.saveUsers(ctx, users); err != nil {
		return err
	}

	remaining := append(tokens[:idx], tokens[idx+1:]...)
	return kv.WriteJSON(ctx, s.kv, resetTokensKey, remaining)
}
