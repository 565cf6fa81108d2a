package repository

import (
	"context"
	"fmt"

	"accountease/internal/data/entity"
	"accountease/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransportRepository interface {
	Create(ctx context.Context, transport *entity.ShipmentTransport) error
	FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*entity.ShipmentTransport, error)
	DeleteByShipment(ctx context.Context, shipmentID uuid.UUID) error
}

type transportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransportRepository(db database.PgxIface, log *zap.Logger) TransportRepository {
	return &transportRepository{
		db:  db,
		log: log.With(zap.String("repository", "transport")),
	}
}

func (r *transportRepository) Create(ctx context.Context, transport *entity.ShipmentTransport) error {
	query := `
		INSERT INTO shipment_transports (id, shipment_id, carrier, file_path, date_issued, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		transport.ID,
		transport.ShipmentID,
		transport.Carrier,
		transport.FilePath,
		transport.DateIssued,
		transport.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create transport",
			zap.Error(err),
			zap.String("shipment_id", transport.ShipmentID.String()),
		)
		return fmt.Errorf("create transport for shipment %s: %w", transport.ShipmentID.String(), err)
	}

	return nil
}

func (r *transportRepository) FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*entity.ShipmentTransport, error) {
	query := `
		SELECT id, shipment_id, carrier, file_path, date_issued, created_at
		FROM shipment_transports
		WHERE shipment_id = $1
		ORDER BY date_issued DESC, created_at DESC
	`

	rows, err := r.db.Query(ctx, query, shipmentID)
	if err != nil {
		r.log.Error("Failed to list transports",
			zap.Error(err),
			zap.String("shipment_id", shipmentID.String()),
		)
		return nil, fmt.Errorf("list transports for shipment %s: %w", shipmentID.String(), err)
	}
	defer rows.Close()

	var transports []*entity.ShipmentTransport
	for rows.Next() {
		var transport entity.ShipmentTransport
		if err := rows.Scan(
			&transport.ID,
			&transport.ShipmentID,
			&transport.Carrier,
			&transport.FilePath,
			&transport.DateIssued,
			&transport.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transport: %w", err)
		}
		transports = append(transports, &transport)
	}

	return transports, rows.Err()
}

func (r *transportRepository) DeleteByShipment(ctx context.Context, shipmentID uuid.UUID) error {
	query := `
		DELETE FROM shipment_transports
		WHERE shipment_id = $1
	`

	if _, err := r.db.Exec(ctx, query, shipmentID); err != nil {
		r.log.Error("Failed to delete transports",
			zap.Error(err),
			zap.String("shipment_id", shipmentID.String()),
		)
		return fmt.Errorf("delete transports for shipment %s: %w", shipmentID.String(), err)
	}

	return nil
}
