package repository

import (
	"context"
	"errors"
	"fmt"

	"accountease/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ResetCommitRepository finalizes a password reset. The credential update
// and the OTP cleanup share one transaction so a duplicate submission can
// never partially apply.
type ResetCommitRepository interface {
	CommitPasswordReset(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

type resetCommitRepository struct {
	db   database.PgxIface
	user UserRepository
	otp  OTPRepository
	log  *zap.Logger
}

func NewResetCommitRepository(db database.PgxIface, user UserRepository, otp OTPRepository, log *zap.Logger) ResetCommitRepository {
	return &resetCommitRepository{
		db:   db,
		user: user,
		otp:  otp,
		log:  log.With(zap.String("repository", "reset_commit")),
	}
}

func (r *resetCommitRepository) CommitPasswordReset(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin reset commit: %w", err)
	}

	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			r.log.Error("Failed to rollback reset commit", zap.Error(rErr))
		}
	}()

	if err := r.user.UpdatePassword(ctx, tx, userID, passwordHash); err != nil {
		return err
	}

	if err := r.otp.DeleteAllForUser(ctx, tx, userID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit password reset",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("commit password reset for user %s: %w", userID.String(), err)
	}

	return nil
}
