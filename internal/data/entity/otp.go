package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetOTP is a one-time 6-digit code issued for the password
// reset flow. Validity is computed lazily from CreatedAt; there is no
// background sweep.
type PasswordResetOTP struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Code   string    `db:"code"`
	IsUsed bool      `db:"is_used"`
}

// IsExpired reports whether the code is past its validity window.
func (o *PasswordResetOTP) IsExpired(now time.Time, window time.Duration) bool {
	return now.Sub(o.CreatedAt) > window
}
