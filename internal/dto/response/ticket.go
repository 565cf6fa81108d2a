package response

import (
	"time"

	"accountease/internal/data/entity"
)

type TicketResponse struct {
	ID          string                `json:"id"`
	TicketID    string                `json:"ticket_id"`
	RaisedBy    string                `json:"raised_by"`
	Subject     string                `json:"subject"`
	Category    entity.TicketCategory `json:"category"`
	Priority    entity.TicketPriority `json:"priority"`
	Description string                `json:"description"`
	IsResolved  bool                  `json:"is_resolved"`
	CreatedAt   time.Time             `json:"created_at"`
}

type TicketCooldownResponse struct {
	RemainingSeconds int `json:"remaining_seconds"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID.String(),
		TicketID:    ticket.TicketID,
		RaisedBy:    ticket.RaisedBy.String(),
		Subject:     ticket.Subject,
		Category:    ticket.Category,
		Priority:    ticket.Priority,
		Description: ticket.Description,
		IsResolved:  ticket.IsResolved,
		CreatedAt:   ticket.CreatedAt,
	}
}
