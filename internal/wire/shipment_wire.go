package wire

import (
	"accountease/internal/adaptor"
	"accountease/internal/data/repository"
	"accountease/pkg/middleware"
	"accountease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShipment(
	r chi.Router,
	shipmentHandler *adaptor.ShipmentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Any logged-in user (viewers included) can browse shipment records.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/shipments", shipmentHandler.List)
		r.Get("/api/shipments/{id}", shipmentHandler.GetByID)
		r.Get("/api/shipments/{id}/transports", shipmentHandler.ListTransports)
	})

	// ==================== ADMIN ROUTES ====================
	// Record management needs edit rights (admin or superadmin).
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/shipments", shipmentHandler.Create)
		r.Put("/api/shipments/{id}", shipmentHandler.Update)
		r.Delete("/api/shipments/{id}", shipmentHandler.Delete)
		r.Post("/api/shipments/{id}/transports", shipmentHandler.AttachTransport)
	})
}
