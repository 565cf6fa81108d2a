package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"accountease/internal/dto/request"
	"accountease/internal/dto/response"
	"accountease/internal/usecase"
	"accountease/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/tickets
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.TicketRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Create(r.Context(), userID.String(), &req)
	if err != nil {
		var cooldown *usecase.ErrTicketCooldown
		if errors.As(err, &cooldown) {
			h.log.Warn("Ticket cooldown active",
				zap.String("user_id", userID.String()),
				zap.Int("remaining_seconds", cooldown.RemainingSeconds))
			utils.ResponseTooManyRequests(w,
				"Please wait before submitting another ticket.",
				response.TicketCooldownResponse{RemainingSeconds: cooldown.RemainingSeconds})
			return
		}

		handleServiceError(w, h.log, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket submitted successfully", resp)
}

// ListMine handles GET /api/tickets
func (h *TicketHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ListByUser(r.Context(), userID.String(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved", resp)
}

// ListAll handles GET /api/tickets/all (admin)
func (h *TicketHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved", resp)
}

// Resolve handles POST /api/tickets/{id}/resolve (admin)
func (h *TicketHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Resolve(r.Context(), pathParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "resolve ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket resolved", nil)
}
