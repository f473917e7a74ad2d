package models

import "time"

// ResetToken is a single-use, time-limited password reset token. Issuing a
// new token for an email discards any prior token for that email.
type ResetToken struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
