package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TokenTTL is how long verification and reset tokens stay redeemable
const TokenTTL = time.Hour

// EmailVerification is the single per-user email verification record.
// A null Token means the record is inactive (consumed or never issued).
type EmailVerification struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"userId"`
	Token      null.String `json:"-"`
	ExpiresAt  time.Time   `json:"expiresAt"`
	CreatedAt  time.Time   `json:"createdAt"`
	VerifiedAt null.Time   `json:"verifiedAt,omitempty"`
}

// Expired reports whether the record's token is past its expiry
func (v *EmailVerification) Expired(now time.Time) bool {
	return v.ExpiresAt.Before(now)
}

// PasswordReset is the single per-user password reset record, structurally
// the twin of EmailVerification but guarding password changes.
type PasswordReset struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Token     null.String `json:"-"`
	ExpiresAt time.Time   `json:"expiresAt"`
	CreatedAt time.Time   `json:"createdAt"`
	ChangedAt null.Time   `json:"changedAt,omitempty"`
}

// Expired reports whether the record's token is past its expiry
func (r *PasswordReset) Expired(now time.Time) bool {
	return r.ExpiresAt.Before(now)
}
