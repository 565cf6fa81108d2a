package adaptor

import (
	"accountease/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Reset    *ResetHandler
	User     *UserHandler
	Shipment *ShipmentHandler
	Ticket   *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Reset:    NewResetHandler(service.Reset, log),
		User:     NewUserHandler(service.User, log),
		Shipment: NewShipmentHandler(service.Shipment, log),
		Ticket:   NewTicketHandler(service.Ticket, log),
	}
}
