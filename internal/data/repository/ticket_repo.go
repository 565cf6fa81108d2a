package repository

import (
	"context"
	"fmt"
	"time"

	"accountease/internal/data/entity"
	"accountease/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Ticket, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	// FindLatestByUserSince returns the user's newest ticket created at or
	// after the given time, or nil. Used for the submission cooldown.
	FindLatestByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (*entity.Ticket, error)
	// NextTicketID allocates the next year-scoped readable id, e.g. "2026-0042".
	NextTicketID(ctx context.Context, year int) (string, error)
	MarkResolved(ctx context.Context, id uuid.UUID) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

const ticketColumns = `id, ticket_id, raised_by, subject, category, priority, description, is_resolved, created_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, ticket_id, raised_by, subject, category,
		                     priority, description, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.TicketID,
		ticket.RaisedBy,
		ticket.Subject,
		ticket.Category,
		ticket.Priority,
		ticket.Description,
		ticket.IsResolved,
		ticket.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.TicketID),
		)
		return fmt.Errorf("create ticket %s: %w", ticket.TicketID, err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE id = $1
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.TicketID,
		&ticket.RaisedBy,
		&ticket.Subject,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Description,
		&ticket.IsResolved,
		&ticket.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find ticket %s: %w", id.String(), err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE raised_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.list(ctx, query, userID, limit, offset)
}

func (r *ticketRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	return r.list(ctx, query, limit, offset)
}

func (r *ticketRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE raised_by = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tickets for user %s: %w", userID.String(), err)
	}
	return count, nil
}

func (r *ticketRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return count, nil
}

func (r *ticketRepository) FindLatestByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (*entity.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE raised_by = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, userID, since).Scan(
		&ticket.ID,
		&ticket.TicketID,
		&ticket.RaisedBy,
		&ticket.Subject,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Description,
		&ticket.IsResolved,
		&ticket.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest ticket",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find latest ticket for user %s: %w", userID.String(), err)
	}

	return &ticket, nil
}

func (r *ticketRepository) NextTicketID(ctx context.Context, year int) (string, error) {
	prefix := fmt.Sprintf("%d-", year)

	query := `
		SELECT ticket_id
		FROM tickets
		WHERE ticket_id LIKE $1 || '%'
		ORDER BY ticket_id DESC
		LIMIT 1
	`

	var last string
	err := r.db.QueryRow(ctx, query, prefix).Scan(&last)
	if err != nil && err != pgx.ErrNoRows {
		r.log.Error("Failed to read last ticket id", zap.Error(err))
		return "", fmt.Errorf("next ticket id: %w", err)
	}

	lastNumber := 0
	if last != "" {
		if _, scanErr := fmt.Sscanf(last, prefix+"%04d", &lastNumber); scanErr != nil {
			return "", fmt.Errorf("parse ticket id %q: %w", last, scanErr)
		}
	}

	return fmt.Sprintf("%s%04d", prefix, lastNumber+1), nil
}

func (r *ticketRepository) MarkResolved(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE tickets
		SET is_resolved = true
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to resolve ticket",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("resolve ticket %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", id.String())
	}

	return nil
}

func (r *ticketRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list tickets", zap.Error(err))
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.TicketID,
			&ticket.RaisedBy,
			&ticket.Subject,
			&ticket.Category,
			&ticket.Priority,
			&ticket.Description,
			&ticket.IsResolved,
			&ticket.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, rows.Err()
}
