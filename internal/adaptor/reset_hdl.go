package adaptor

import (
	"encoding/json"
	"net/http"

	"accountease/internal/dto/request"
	"accountease/internal/usecase"
	"accountease/pkg/apperr"
	"accountease/pkg/utils"

	"go.uber.org/zap"
)

// resetCookieName carries the caller's reset-flow session key across the
// three steps.
const resetCookieName = "reset_token"

type ResetHandler struct {
	service usecase.ResetService
	log     *zap.Logger
}

func NewResetHandler(service usecase.ResetService, log *zap.Logger) *ResetHandler {
	return &ResetHandler{
		service: service,
		log:     log,
	}
}

// ForgotPassword handles POST /api/password/forgot
func (h *ResetHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	// A fresh key per flow; any earlier progress under an old key is
	// abandoned by the service.
	sessionKey := utils.GenerateUUID().String()

	if err := h.service.RequestReset(r.Context(), sessionKey, req.Email); err != nil {
		h.handleResetError(w, err, "request reset")
		return
	}

	h.setResetCookie(w, sessionKey)
	utils.ResponseSuccess(w, "OTP sent to your email", nil)
}

// VerifyOTP handles POST /api/password/verify-otp
func (h *ResetHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sessionKey, ok := h.resetSessionKey(r)
	if !ok {
		utils.ResponseConflict(w, "Reset flow not started. Please request a new OTP.")
		return
	}

	if err := h.service.VerifyCode(r.Context(), sessionKey, req.OTP); err != nil {
		if apperr.IsKind(err, apperr.KindExpired) || apperr.IsKind(err, apperr.KindSequence) {
			h.clearResetCookie(w)
		}
		h.handleResetError(w, err, "verify OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP verified. Set your new password.", nil)
}

// ResetPassword handles POST /api/password/reset
func (h *ResetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sessionKey, ok := h.resetSessionKey(r)
	if !ok {
		utils.ResponseConflict(w, "Reset flow not started. Please request a new OTP.")
		return
	}

	err := h.service.CommitNewPassword(r.Context(), sessionKey, req.Password, req.ConfirmPassword)
	if err != nil {
		if apperr.IsKind(err, apperr.KindSequence) || apperr.IsKind(err, apperr.KindInternal) {
			h.clearResetCookie(w)
		}
		h.handleResetError(w, err, "reset password")
		return
	}

	h.clearResetCookie(w)
	utils.ResponseSuccess(w, "Password reset successfully. You can now log in.", nil)
}

// ==================== HELPERS ====================

func (h *ResetHandler) resetSessionKey(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(resetCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (h *ResetHandler) setResetCookie(w http.ResponseWriter, sessionKey string) {
	http.SetCookie(w, &http.Cookie{
		Name:     resetCookieName,
		Value:    sessionKey,
		Path:     "/",
		MaxAge:   1800,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *ResetHandler) clearResetCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     resetCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// handleResetError maps typed reset-flow errors to HTTP responses. This is
// the single boundary where the flow's errors become caller-facing.
func (h *ResetHandler) handleResetError(w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		h.log.Warn(operation+" failed - no account", zap.Error(err))
		utils.ResponseNotFound(w, "No account found with this email.")

	case apperr.KindSequence:
		h.log.Warn(operation+" failed - out of order", zap.Error(err))
		utils.ResponseConflict(w, "Reset flow not started. Please request a new OTP.")

	case apperr.KindInvalidCode:
		h.log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid OTP.", nil)

	case apperr.KindExpired:
		h.log.Warn(operation+" failed - expired OTP", zap.Error(err))
		utils.ResponseBadRequest(w, "OTP expired. Please request a new one.", nil)

	case apperr.KindMismatch:
		h.log.Warn(operation+" failed - password mismatch", zap.Error(err))
		utils.ResponseBadRequest(w, "Passwords do not match.", nil)

	case apperr.KindValidation:
		h.log.Warn(operation+" failed - weak password", zap.Error(err))
		utils.ResponseBadRequest(w, "Password does not meet requirements.", apperr.ReasonsOf(err))

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
