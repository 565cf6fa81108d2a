package repository

import (
	"context"
	"fmt"

	"accountease/internal/data/entity"
	"accountease/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.PasswordResetOTP) error
	// FindLatestUnused returns the newest unused record matching the code,
	// or nil when there is none.
	FindLatestUnused(ctx context.Context, userID uuid.UUID, code string) (*entity.PasswordResetOTP, error)
	MarkAsUsed(ctx context.Context, otpID uuid.UUID) error
	// MarkAllUsed invalidates every outstanding code for the user and
	// returns how many were affected.
	MarkAllUsed(ctx context.Context, userID uuid.UUID) (int64, error)
	// DeleteAllForUser removes every record for the user inside the
	// caller's transaction.
	DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error
	CountUnused(ctx context.Context, userID uuid.UUID) (int64, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.PasswordResetOTP) error {
	query := `
		INSERT INTO password_reset_otps (id, user_id, code, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.UserID,
		otp.Code,
		otp.IsUsed,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("user_id", otp.UserID.String()),
		)
		return fmt.Errorf("create OTP for user %s: %w", otp.UserID.String(), err)
	}

	return nil
}

func (r *otpRepository) FindLatestUnused(ctx context.Context, userID uuid.UUID, code string) (*entity.PasswordResetOTP, error) {
	query := `
		SELECT id, user_id, code, is_used, created_at
		FROM password_reset_otps
		WHERE user_id = $1
		  AND code = $2
		  AND is_used = false
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp entity.PasswordResetOTP
	err := r.db.QueryRow(ctx, query, userID, code).Scan(
		&otp.ID,
		&otp.UserID,
		&otp.Code,
		&otp.IsUsed,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find OTP for user %s: %w", userID.String(), err)
	}

	return &otp, nil
}

func (r *otpRepository) MarkAsUsed(ctx context.Context, otpID uuid.UUID) error {
	query := `
		UPDATE password_reset_otps
		SET is_used = true
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, otpID)
	if err != nil {
		r.log.Error("Failed to mark OTP as used",
			zap.Error(err),
			zap.String("otp_id", otpID.String()),
		)
		return fmt.Errorf("mark OTP %s as used: %w", otpID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("OTP %s not found", otpID.String())
	}

	return nil
}

func (r *otpRepository) MarkAllUsed(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		UPDATE password_reset_otps
		SET is_used = true
		WHERE user_id = $1 AND is_used = false
	`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to invalidate outstanding OTPs",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("invalidate OTPs for user %s: %w", userID.String(), err)
	}

	return result.RowsAffected(), nil
}

func (r *otpRepository) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	query := `
		DELETE FROM password_reset_otps
		WHERE user_id = $1
	`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		r.log.Error("Failed to delete OTPs",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete OTPs for user %s: %w", userID.String(), err)
	}

	return nil
}

func (r *otpRepository) CountUnused(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM password_reset_otps
		WHERE user_id = $1 AND is_used = false
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count unused OTPs",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count OTPs for user %s: %w", userID.String(), err)
	}

	return count, nil
}
