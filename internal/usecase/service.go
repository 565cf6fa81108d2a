package usecase

import (
	"accountease/internal/data/repository"
	"accountease/pkg/mailer"
	"accountease/pkg/password"
	"accountease/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Reset    ResetService
	User     UserService
	Shipment ShipmentService
	Ticket   TicketService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	policy := password.NewPolicy(config.Password.MinLength)

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Reset:    NewResetService(repo, mail, policy, config, log),
		User:     NewUserService(repo.User, log),
		Shipment: NewShipmentService(repo, config, log),
		Ticket:   NewTicketService(repo, mail, config, log),
	}
}
