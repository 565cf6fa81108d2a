package entity

import (
	"github.com/google/uuid"
)

// ResetState tracks progress through the password reset flow. The start
// state is represented by the absence of a ResetSession, so a session
// can only ever hold the data valid for its state.
type ResetState string

const (
	// ResetStateIdentified means an account was resolved from an email.
	ResetStateIdentified ResetState = "identified"
	// ResetStateVerified means the OTP check passed for that account.
	ResetStateVerified ResetState = "verified"
)

// ResetSession is the short-lived server-side record gating each step of
// the reset flow on the previous one.
type ResetSession struct {
	UserID uuid.UUID
	State  ResetState
}

// Verified reports whether the OTP step has been passed.
func (s *ResetSession) Verified() bool {
	return s != nil && s.State == ResetStateVerified
}
