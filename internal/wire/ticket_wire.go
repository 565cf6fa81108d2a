package wire

import (
	"accountease/internal/adaptor"
	"accountease/internal/data/repository"
	"accountease/pkg/middleware"
	"accountease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/tickets", ticketHandler.Create)
		r.Get("/api/tickets", ticketHandler.ListMine)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/api/tickets/all", ticketHandler.ListAll)
		r.Post("/api/tickets/{id}/resolve", ticketHandler.Resolve)
	})
}
