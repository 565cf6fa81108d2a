package repository

import (
	"time"

	"accountease/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	OTP          OTPRepository
	ResetSession ResetSessionStore
	ResetCommit  ResetCommitRepository
	Shipment     ShipmentRepository
	Transport    TransportRepository
	Ticket       TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	user := NewUserRepository(db, log)
	otp := NewOTPRepository(db, log)

	return &Repository{
		User:         user,
		Session:      NewSessionRepository(db, log),
		OTP:          otp,
		ResetSession: NewMemoryResetSessionStore(30 * time.Minute),
		ResetCommit:  NewResetCommitRepository(db, user, otp, log),
		Shipment:     NewShipmentRepository(db, log),
		Transport:    NewTransportRepository(db, log),
		Ticket:       NewTicketRepository(db, log),
	}
}
