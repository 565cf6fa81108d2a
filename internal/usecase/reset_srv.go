package usecase

import (
	"context"
	"fmt"
	"time"

	"accountease/internal/data/entity"
	"accountease/internal/data/repository"
	"accountease/pkg/apperr"
	"accountease/pkg/mailer"
	"accountease/pkg/password"
	"accountease/pkg/utils"

	"go.uber.org/zap"
)

// ResetService drives the three-step password reset flow:
// request (email -> OTP) -> verify (OTP) -> commit (new password).
// Each step is gated on the previous one through the reset session;
// any out-of-order call clears the session and forces a restart.
type ResetService interface {
	RequestReset(ctx context.Context, sessionKey, email string) error
	VerifyCode(ctx context.Context, sessionKey, code string) error
	CommitNewPassword(ctx context.Context, sessionKey, newPassword, confirmPassword string) error
}

type resetService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	policy *password.Policy
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewResetService(
	repo *repository.Repository,
	mail mailer.Mailer,
	policy *password.Policy,
	config *utils.Config,
	log *zap.Logger,
) ResetService {
	return &resetService{
		repo:   repo,
		mail:   mail,
		policy: policy,
		config: config,
		log:    log,
		now:    time.Now,
	}
}

func (s *resetService) codeWindow() time.Duration {
	minutes := s.config.OTP.ExpiryMinutes
	if minutes <= 0 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}

// ==================== STEP 1: REQUEST ====================

func (s *resetService) RequestReset(ctx context.Context, sessionKey, email string) error {
	// 1. Resolve the account. A miss is reported generically so the
	//    response does not reveal which addresses are registered.
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return apperr.NewInternal("failed to process request", err)
	}
	if user == nil {
		s.log.Warn("Password reset requested for unknown email", zap.String("email", email))
		return apperr.NewNotFound("no account found with this email")
	}

	// 2. Invalidate prior outstanding codes so only the newest one can
	//    succeed. Best-effort sequential with the create below; worst case
	//    of a crash in between is a harmless extra invalidation.
	invalidated, err := s.repo.OTP.MarkAllUsed(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to invalidate prior OTPs", zap.Error(err), zap.String("user_id", user.ID.String()))
		return apperr.NewInternal("failed to process request", err)
	}
	if invalidated > 0 {
		s.log.Debug("Invalidated prior OTPs",
			zap.Int64("count", invalidated),
			zap.String("user_id", user.ID.String()),
		)
	}

	// 3. Generate and persist the new code
	now := s.now()
	otp := &entity.PasswordResetOTP{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		UserID: user.ID,
		Code:   utils.GenerateResetCode(),
		IsUsed: false,
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return apperr.NewInternal("failed to process request", err)
	}

	// 4. Dispatch the code. Delivery failure must not abort the flow; the
	//    record is already persisted and the caller proceeds to the
	//    verification step either way.
	msg := mailer.Message{
		To:      []string{user.Email},
		Subject: "Your Password Reset OTP",
		Body: fmt.Sprintf("Your OTP is %s. It expires in %d minutes.",
			otp.Code, int(s.codeWindow().Minutes())),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		s.log.Warn("OTP generated but email failed to send",
			zap.Error(err),
			zap.String("email", user.Email),
		)
	}

	// 5. Start a fresh flow session, discarding any previous progress
	s.repo.ResetSession.Put(sessionKey, &entity.ResetSession{
		UserID: user.ID,
		State:  entity.ResetStateIdentified,
	})

	s.log.Info("Password reset OTP issued", zap.String("user_id", user.ID.String()))
	return nil
}

// ==================== STEP 2: VERIFY ====================

func (s *resetService) VerifyCode(ctx context.Context, sessionKey, code string) error {
	session := s.repo.ResetSession.Get(sessionKey)
	if session == nil {
		s.log.Warn("OTP verification attempted without an identified session")
		s.repo.ResetSession.Clear(sessionKey)
		return apperr.NewSequence("reset flow not started")
	}

	otp, err := s.repo.OTP.FindLatestUnused(ctx, session.UserID, code)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("user_id", session.UserID.String()))
		return apperr.NewInternal("failed to verify OTP", err)
	}

	// Wrong code leaves the session untouched; the caller may retry.
	if otp == nil {
		s.log.Warn("Invalid OTP attempt", zap.String("user_id", session.UserID.String()))
		return apperr.NewInvalidCode("invalid OTP")
	}

	// An expired code is consumed even though verification fails, so the
	// same code cannot be retried. The caller restarts from step 1.
	if otp.IsExpired(s.now(), s.codeWindow()) {
		if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
			s.log.Warn("Failed to mark expired OTP as used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
		}
		s.repo.ResetSession.Clear(sessionKey)
		s.log.Info("Expired OTP submitted", zap.String("user_id", session.UserID.String()))
		return apperr.NewExpired("OTP expired, please request a new one")
	}

	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Error("Failed to mark OTP as used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
		return apperr.NewInternal("failed to verify OTP", err)
	}

	s.repo.ResetSession.Put(sessionKey, &entity.ResetSession{
		UserID: session.UserID,
		State:  entity.ResetStateVerified,
	})

	s.log.Info("OTP verified", zap.String("user_id", session.UserID.String()))
	return nil
}

// ==================== STEP 3: COMMIT ====================

func (s *resetService) CommitNewPassword(ctx context.Context, sessionKey, newPassword, confirmPassword string) error {
	session := s.repo.ResetSession.Get(sessionKey)
	if !session.Verified() {
		s.log.Warn("Password commit attempted without a verified session")
		s.repo.ResetSession.Clear(sessionKey)
		return apperr.NewSequence("reset flow not verified")
	}

	if newPassword != confirmPassword {
		return apperr.NewMismatch("passwords do not match")
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		s.log.Error("Failed to load user for reset", zap.Error(err), zap.String("user_id", session.UserID.String()))
		s.repo.ResetSession.Clear(sessionKey)
		return apperr.NewInternal("failed to reset password", err)
	}
	if user == nil {
		// Account vanished between steps; abandon the flow entirely.
		s.log.Error("User not found at password commit", zap.String("user_id", session.UserID.String()))
		s.repo.ResetSession.Clear(sessionKey)
		return apperr.NewInternal("failed to reset password", nil)
	}

	if reasons := s.policy.Validate(newPassword, user.Username, user.Email); len(reasons) > 0 {
		return apperr.NewValidation("password does not meet requirements", reasons)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return apperr.NewInternal("failed to reset password", err)
	}

	// Credential update and OTP cleanup commit together or not at all.
	if err := s.repo.ResetCommit.CommitPasswordReset(ctx, user.ID, hash); err != nil {
		s.log.Error("Failed to commit password reset", zap.Error(err), zap.String("user_id", user.ID.String()))
		return apperr.NewInternal("failed to reset password", err)
	}

	s.repo.ResetSession.Clear(sessionKey)

	s.log.Info("Password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}
