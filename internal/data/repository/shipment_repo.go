package repository

import (
	"context"
	"fmt"

	"accountease/internal/data/entity"
	"accountease/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entity.Shipment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error)
	FindByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Shipment, error)
	// FindAll lists shipments newest dispatch first, optionally filtered
	// by applicant substring.
	FindAll(ctx context.Context, applicant string, limit, offset int) ([]*entity.Shipment, error)
	CountAll(ctx context.Context, applicant string) (int64, error)
	Update(ctx context.Context, shipment *entity.Shipment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShipmentRepository(db database.PgxIface, log *zap.Logger) ShipmentRepository {
	return &shipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "shipment")),
	}
}

const shipmentColumns = `id, applicant, invoice_no, bank_name, bank_ref_no, insurance_company,
	       amount, currency, price_terms, payment_terms, dispatch_date,
	       doc_received_date, eta_date, settlement_date, margin_amount, margin_date,
	       customs_entry_date, doc_to_bank, pp_no, vanshar, created_by,
	       created_at, updated_at, deleted_at`

func (r *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipments (id, applicant, invoice_no, bank_name, bank_ref_no,
		                       insurance_company, amount, currency, price_terms, payment_terms,
		                       dispatch_date, doc_received_date, eta_date, settlement_date,
		                       margin_amount, margin_date, customs_entry_date, doc_to_bank,
		                       pp_no, vanshar, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`

	_, err := r.db.Exec(ctx, query,
		shipment.ID,
		shipment.Applicant,
		shipment.InvoiceNo,
		shipment.BankName,
		shipment.BankRefNo,
		shipment.InsuranceCompany,
		shipment.Amount,
		shipment.Currency,
		shipment.PriceTerms,
		shipment.PaymentTerms,
		shipment.DispatchDate,
		shipment.DocReceivedDate,
		shipment.ETADate,
		shipment.SettlementDate,
		shipment.MarginAmount,
		shipment.MarginDate,
		shipment.CustomsEntryDate,
		shipment.DocToBankDate,
		shipment.PPNo,
		shipment.Vanshar,
		shipment.CreatedBy,
		shipment.CreatedAt,
		shipment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create shipment",
			zap.Error(err),
			zap.String("invoice_no", shipment.InvoiceNo),
		)
		return fmt.Errorf("create shipment %s: %w", shipment.InvoiceNo, err)
	}

	return nil
}

func (r *shipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1 AND deleted_at IS NULL
	`

	return r.scanOne(ctx, query, id)
}

func (r *shipmentRepository) FindByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE invoice_no = $1 AND deleted_at IS NULL
	`

	return r.scanOne(ctx, query, invoiceNo)
}

func (r *shipmentRepository) FindAll(ctx context.Context, applicant string, limit, offset int) ([]*entity.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR applicant ILIKE '%' || $1 || '%')
		ORDER BY dispatch_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, applicant, limit, offset)
	if err != nil {
		r.log.Error("Failed to list shipments", zap.Error(err))
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	var shipments []*entity.Shipment
	for rows.Next() {
		shipment, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}

	return shipments, rows.Err()
}

func (r *shipmentRepository) CountAll(ctx context.Context, applicant string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM shipments
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR applicant ILIKE '%' || $1 || '%')
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, applicant).Scan(&count); err != nil {
		r.log.Error("Failed to count shipments", zap.Error(err))
		return 0, fmt.Errorf("count shipments: %w", err)
	}

	return count, nil
}

func (r *shipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) error {
	query := `
		UPDATE shipments
		SET applicant = $2, invoice_no = $3, bank_name = $4, bank_ref_no = $5,
		    insurance_company = $6, amount = $7, currency = $8, price_terms = $9,
		    payment_terms = $10, dispatch_date = $11, doc_received_date = $12,
		    eta_date = $13, settlement_date = $14, margin_amount = $15, margin_date = $16,
		    customs_entry_date = $17, doc_to_bank = $18, pp_no = $19, vanshar = $20,
		    updated_at = $21
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		shipment.ID,
		shipment.Applicant,
		shipment.InvoiceNo,
		shipment.BankName,
		shipment.BankRefNo,
		shipment.InsuranceCompany,
		shipment.Amount,
		shipment.Currency,
		shipment.PriceTerms,
		shipment.PaymentTerms,
		shipment.DispatchDate,
		shipment.DocReceivedDate,
		shipment.ETADate,
		shipment.SettlementDate,
		shipment.MarginAmount,
		shipment.MarginDate,
		shipment.CustomsEntryDate,
		shipment.DocToBankDate,
		shipment.PPNo,
		shipment.Vanshar,
		shipment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update shipment",
			zap.Error(err),
			zap.String("shipment_id", shipment.ID.String()),
		)
		return fmt.Errorf("update shipment %s: %w", shipment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shipment %s not found", shipment.ID.String())
	}

	return nil
}

func (r *shipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE shipments
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete shipment",
			zap.Error(err),
			zap.String("shipment_id", id.String()),
		)
		return fmt.Errorf("delete shipment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shipment %s not found", id.String())
	}

	return nil
}

func (r *shipmentRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Shipment, error) {
	row := r.db.QueryRow(ctx, query, arg)

	shipment, err := scanShipment(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find shipment", zap.Error(err))
		return nil, fmt.Errorf("find shipment: %w", err)
	}

	return shipment, nil
}

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var shipment entity.Shipment
	err := row.Scan(
		&shipment.ID,
		&shipment.Applicant,
		&shipment.InvoiceNo,
		&shipment.BankName,
		&shipment.BankRefNo,
		&shipment.InsuranceCompany,
		&shipment.Amount,
		&shipment.Currency,
		&shipment.PriceTerms,
		&shipment.PaymentTerms,
		&shipment.DispatchDate,
		&shipment.DocReceivedDate,
		&shipment.ETADate,
		&shipment.SettlementDate,
		&shipment.MarginAmount,
		&shipment.MarginDate,
		&shipment.CustomsEntryDate,
		&shipment.DocToBankDate,
		&shipment.PPNo,
		&shipment.Vanshar,
		&shipment.CreatedBy,
		&shipment.CreatedAt,
		&shipment.UpdatedAt,
		&shipment.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &shipment, nil
}
