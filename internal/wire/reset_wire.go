package wire

import (
	"accountease/internal/adaptor"
	"accountease/internal/data/repository"
	"accountease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReset(
	r chi.Router,
	resetHandler *adaptor.ResetHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Password reset is for users who cannot log in, so no auth middleware.
	// Flow ordering is enforced by the reset session cookie instead.
	r.Post("/api/password/forgot", resetHandler.ForgotPassword)
	r.Post("/api/password/verify-otp", resetHandler.VerifyOTP)
	r.Post("/api/password/reset", resetHandler.ResetPassword)
}
