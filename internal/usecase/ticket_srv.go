package usecase

import (
	"context"
	"fmt"
	"time"

	"accountease/internal/data/entity"
	"accountease/internal/data/repository"
	"accountease/internal/dto/request"
	"accountease/internal/dto/response"
	"accountease/pkg/mailer"
	"accountease/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTicketCooldown is returned when a user submits tickets too quickly.
type ErrTicketCooldown struct {
	RemainingSeconds int
}

func (e *ErrTicketCooldown) Error() string {
	return fmt.Sprintf("please wait %d seconds before submitting another ticket", e.RemainingSeconds)
}

type TicketService interface {
	Create(ctx context.Context, userID string, req *request.TicketRequest) (*response.TicketResponse, error)
	ListByUser(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
	ListAll(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
	Resolve(ctx context.Context, ticketID string) error
}

type ticketService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewTicketService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) TicketService {
	return &ticketService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
		now:    time.Now,
	}
}

func (s *ticketService) cooldown() time.Duration {
	minutes := s.config.Ticket.CooldownMinutes
	if minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}

func (s *ticketService) Create(ctx context.Context, userID string, req *request.TicketRequest) (*response.TicketResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	raisedBy, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := s.repo.User.FindByID(ctx, raisedBy)
	if err != nil || user == nil {
		s.log.Error("Failed to load user for ticket", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("user not found")
	}

	// 2. Per-user cooldown against spamming
	now := s.now()
	last, err := s.repo.Ticket.FindLatestByUserSince(ctx, raisedBy, now.Add(-s.cooldown()))
	if err != nil {
		s.log.Error("Failed to check ticket cooldown", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create ticket")
	}
	if last != nil {
		remaining := int(s.cooldown().Seconds() - now.Sub(last.CreatedAt).Seconds())
		if remaining > 0 {
			return nil, &ErrTicketCooldown{RemainingSeconds: remaining}
		}
	}

	// 3. Allocate the readable year-scoped id
	ticketID, err := s.repo.Ticket.NextTicketID(ctx, now.Year())
	if err != nil {
		s.log.Error("Failed to allocate ticket id", zap.Error(err))
		return nil, fmt.Errorf("failed to create ticket")
	}

	// 4. Save ticket
	ticket := &entity.Ticket{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		TicketID:    ticketID,
		RaisedBy:    raisedBy,
		Subject:     req.Subject,
		Category:    entity.TicketCategory(req.Category),
		Priority:    entity.TicketPriority(req.Priority),
		Description: req.Description,
	}

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		s.log.Error("Failed to create ticket", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create ticket")
	}

	// 5. Notify the helpdesk. A failed send is a warning, never a rollback;
	//    the ticket is already saved.
	if s.config.Ticket.NotifyEmail != "" {
		body := fmt.Sprintf(
			"--- ACCOUNTEASE TICKET RAISED ---\n\n"+
				"Ticket ID: #%s\n"+
				"Raised By: %s (%s)\n"+
				"Category: %s\n"+
				"Priority: %s\n"+
				"Subject: %s\n"+
				"Description:\n%s\n",
			ticket.TicketID, user.Username, user.Email,
			ticket.Category, ticket.Priority, ticket.Subject, ticket.Description,
		)

		msg := mailer.Message{
			To:      []string{s.config.Ticket.NotifyEmail},
			Subject: fmt.Sprintf("[%s] New Ticket: %s", ticket.Priority, ticket.Subject),
			Body:    body,
		}
		if err := s.mail.Send(ctx, msg); err != nil {
			s.log.Warn("Ticket created but notification email failed",
				zap.Error(err),
				zap.String("ticket_id", ticket.TicketID),
			)
		}
	}

	s.log.Info("Ticket created",
		zap.String("ticket_id", ticket.TicketID),
		zap.String("user_id", userID))

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) ListByUser(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	raisedBy, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	tickets, err := s.repo.Ticket.FindByUser(ctx, raisedBy, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list tickets", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list tickets")
	}

	total, err := s.repo.Ticket.CountByUser(ctx, raisedBy)
	if err != nil {
		s.log.Error("Failed to count tickets", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list tickets")
	}

	return response.NewPaginatedResponse(ticketsToResponses(tickets), page.Page, page.Limit(), total), nil
}

func (s *ticketService) ListAll(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	tickets, err := s.repo.Ticket.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list tickets", zap.Error(err))
		return nil, fmt.Errorf("failed to list tickets")
	}

	total, err := s.repo.Ticket.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count tickets", zap.Error(err))
		return nil, fmt.Errorf("failed to list tickets")
	}

	return response.NewPaginatedResponse(ticketsToResponses(tickets), page.Page, page.Limit(), total), nil
}

func (s *ticketService) Resolve(ctx context.Context, ticketID string) error {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return fmt.Errorf("invalid ticket ID")
	}

	if err := s.repo.Ticket.MarkResolved(ctx, id); err != nil {
		s.log.Error("Failed to resolve ticket", zap.Error(err), zap.String("ticket_id", ticketID))
		return fmt.Errorf("failed to resolve ticket")
	}

	s.log.Info("Ticket resolved", zap.String("ticket_id", ticketID))
	return nil
}

func ticketsToResponses(tickets []*entity.Ticket) []response.TicketResponse {
	items := make([]response.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		items = append(items, response.TicketToResponse(ticket))
	}
	return items
}
