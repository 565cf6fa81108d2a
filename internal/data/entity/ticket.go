package entity

import (
	"github.com/google/uuid"
)

type TicketCategory string

const (
	TicketCategoryTechnical TicketCategory = "technical"
	TicketCategoryBilling   TicketCategory = "billing"
	TicketCategoryFeature   TicketCategory = "feature"
	TicketCategoryGeneral   TicketCategory = "general"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// Ticket is a support request raised by a user. TicketID is a readable
// year-scoped sequence like "2026-0001", distinct from the row ID.
type Ticket struct {
	BaseSimple
	TicketID    string         `db:"ticket_id"`
	RaisedBy    uuid.UUID      `db:"raised_by"`
	Subject     string         `db:"subject"`
	Category    TicketCategory `db:"category"`
	Priority    TicketPriority `db:"priority"`
	Description string         `db:"description"`
	IsResolved  bool           `db:"is_resolved"`
}
