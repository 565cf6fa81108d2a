package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"accountease/internal/data/entity"
	"accountease/internal/data/repository"
	"accountease/internal/dto/request"
	"accountease/internal/dto/response"
	"accountease/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShipmentService interface {
	Create(ctx context.Context, creatorID string, req *request.ShipmentRequest) (*response.ShipmentResponse, error)
	GetByID(ctx context.Context, id string) (*response.ShipmentResponse, error)
	List(ctx context.Context, req *request.ShipmentListRequest) (*response.PaginatedResponse[response.ShipmentResponse], error)
	Update(ctx context.Context, id string, req *request.ShipmentRequest) (*response.ShipmentResponse, error)
	Delete(ctx context.Context, id string) error

	AttachTransport(ctx context.Context, shipmentID string, carrier *string, filename string, file io.Reader) (*response.TransportResponse, error)
	ListTransports(ctx context.Context, shipmentID string) ([]response.TransportResponse, error)
}

type shipmentService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewShipmentService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ShipmentService {
	return &shipmentService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *shipmentService) applyRequest(shipment *entity.Shipment, req *request.ShipmentRequest) error {
	dispatchDate, err := parseDate(req.DispatchDate)
	if err != nil {
		return fmt.Errorf("invalid dispatch date")
	}

	optional := []struct {
		src *string
		dst **time.Time
	}{
		{req.DocReceivedDate, &shipment.DocReceivedDate},
		{req.ETADate, &shipment.ETADate},
		{req.SettlementDate, &shipment.SettlementDate},
		{req.MarginDate, &shipment.MarginDate},
		{req.CustomsEntryDate, &shipment.CustomsEntryDate},
		{req.DocToBankDate, &shipment.DocToBankDate},
	}
	for _, field := range optional {
		parsed, err := parseOptionalDate(field.src)
		if err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD")
		}
		*field.dst = parsed
	}

	shipment.Applicant = req.Applicant
	shipment.InvoiceNo = req.InvoiceNo
	shipment.BankName = req.BankName
	shipment.BankRefNo = req.BankRefNo
	shipment.InsuranceCompany = req.InsuranceCompany
	shipment.Amount = req.Amount
	shipment.Currency = req.Currency
	shipment.PriceTerms = req.PriceTerms
	shipment.PaymentTerms = req.PaymentTerms
	shipment.DispatchDate = dispatchDate
	shipment.MarginAmount = req.MarginAmount
	shipment.PPNo = req.PPNo
	shipment.Vanshar = req.Vanshar

	return nil
}

func (s *shipmentService) Create(ctx context.Context, creatorID string, req *request.ShipmentRequest) (*response.ShipmentResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Shipment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Invoice numbers are unique
	existing, err := s.repo.Shipment.FindByInvoiceNo(ctx, req.InvoiceNo)
	if err != nil {
		s.log.Error("Failed to check invoice no", zap.Error(err), zap.String("invoice_no", req.InvoiceNo))
		return nil, fmt.Errorf("failed to check invoice number")
	}
	if existing != nil {
		return nil, fmt.Errorf("invoice number already exists")
	}

	// 3. Build entity
	now := time.Now()
	shipment := &entity.Shipment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.applyRequest(shipment, req); err != nil {
		return nil, err
	}

	if creator, parseErr := uuid.Parse(creatorID); parseErr == nil {
		shipment.CreatedBy = &creator
	}

	// 4. Save
	if err := s.repo.Shipment.Create(ctx, shipment); err != nil {
		s.log.Error("Failed to create shipment", zap.Error(err), zap.String("invoice_no", req.InvoiceNo))
		return nil, fmt.Errorf("failed to create shipment")
	}

	s.log.Info("Shipment created",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("invoice_no", shipment.InvoiceNo))

	resp := response.ShipmentToResponse(shipment)
	return &resp, nil
}

func (s *shipmentService) GetByID(ctx context.Context, id string) (*response.ShipmentResponse, error) {
	shipmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid shipment ID")
	}

	shipment, err := s.repo.Shipment.FindByID(ctx, shipmentID)
	if err != nil {
		s.log.Error("Failed to find shipment", zap.Error(err), zap.String("shipment_id", id))
		return nil, fmt.Errorf("failed to get shipment")
	}
	if shipment == nil {
		return nil, fmt.Errorf("shipment not found")
	}

	resp := response.ShipmentToResponse(shipment)
	return &resp, nil
}

func (s *shipmentService) List(ctx context.Context, req *request.ShipmentListRequest) (*response.PaginatedResponse[response.ShipmentResponse], error) {
	shipments, err := s.repo.Shipment.FindAll(ctx, req.Applicant, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list shipments", zap.Error(err))
		return nil, fmt.Errorf("failed to list shipments")
	}

	total, err := s.repo.Shipment.CountAll(ctx, req.Applicant)
	if err != nil {
		s.log.Error("Failed to count shipments", zap.Error(err))
		return nil, fmt.Errorf("failed to list shipments")
	}

	items := make([]response.ShipmentResponse, 0, len(shipments))
	for _, shipment := range shipments {
		items = append(items, response.ShipmentToResponse(shipment))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *shipmentService) Update(ctx context.Context, id string, req *request.ShipmentRequest) (*response.ShipmentResponse, error) {
	shipmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid shipment ID")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Shipment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	shipment, err := s.repo.Shipment.FindByID(ctx, shipmentID)
	if err != nil {
		s.log.Error("Failed to find shipment", zap.Error(err), zap.String("shipment_id", id))
		return nil, fmt.Errorf("failed to update shipment")
	}
	if shipment == nil {
		return nil, fmt.Errorf("shipment not found")
	}

	// Invoice number must stay unique across other shipments
	if shipment.InvoiceNo != req.InvoiceNo {
		existing, err := s.repo.Shipment.FindByInvoiceNo(ctx, req.InvoiceNo)
		if err != nil {
			return nil, fmt.Errorf("failed to check invoice number")
		}
		if existing != nil {
			return nil, fmt.Errorf("invoice number already exists")
		}
	}

	if err := s.applyRequest(shipment, req); err != nil {
		return nil, err
	}
	shipment.UpdatedAt = time.Now()

	if err := s.repo.Shipment.Update(ctx, shipment); err != nil {
		s.log.Error("Failed to update shipment", zap.Error(err), zap.String("shipment_id", id))
		return nil, fmt.Errorf("failed to update shipment")
	}

	s.log.Info("Shipment updated", zap.String("shipment_id", id))

	resp := response.ShipmentToResponse(shipment)
	return &resp, nil
}

func (s *shipmentService) Delete(ctx context.Context, id string) error {
	shipmentID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid shipment ID")
	}

	if err := s.repo.Shipment.Delete(ctx, shipmentID); err != nil {
		s.log.Error("Failed to delete shipment", zap.Error(err), zap.String("shipment_id", id))
		return fmt.Errorf("failed to delete shipment")
	}

	s.log.Info("Shipment deleted", zap.String("shipment_id", id))
	return nil
}

// ==================== TRANSPORTS & ATTACHMENTS ====================

func (s *shipmentService) AttachTransport(ctx context.Context, shipmentID string, carrier *string, filename string, file io.Reader) (*response.TransportResponse, error) {
	id, err := uuid.Parse(shipmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid shipment ID")
	}

	shipment, err := s.repo.Shipment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find shipment", zap.Error(err), zap.String("shipment_id", shipmentID))
		return nil, fmt.Errorf("failed to attach transport")
	}
	if shipment == nil {
		return nil, fmt.Errorf("shipment not found")
	}

	now := time.Now()
	transport := &entity.ShipmentTransport{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		ShipmentID: id,
		Carrier:    carrier,
		DateIssued: now,
	}

	if file != nil && filename != "" {
		storedPath, err := s.storeChittiFile(transport.ID, filename, file)
		if err != nil {
			s.log.Error("Failed to store chitti file", zap.Error(err), zap.String("shipment_id", shipmentID))
			return nil, fmt.Errorf("failed to store attachment")
		}
		transport.FilePath = &storedPath
	}

	if err := s.repo.Transport.Create(ctx, transport); err != nil {
		s.log.Error("Failed to create transport", zap.Error(err), zap.String("shipment_id", shipmentID))
		return nil, fmt.Errorf("failed to attach transport")
	}

	s.log.Info("Transport attached",
		zap.String("shipment_id", shipmentID),
		zap.String("transport_id", transport.ID.String()))

	resp := response.TransportToResponse(transport, s.fileURL(transport.FilePath))
	return &resp, nil
}

func (s *shipmentService) ListTransports(ctx context.Context, shipmentID string) ([]response.TransportResponse, error) {
	id, err := uuid.Parse(shipmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid shipment ID")
	}

	transports, err := s.repo.Transport.FindByShipment(ctx, id)
	if err != nil {
		s.log.Error("Failed to list transports", zap.Error(err), zap.String("shipment_id", shipmentID))
		return nil, fmt.Errorf("failed to list transports")
	}

	items := make([]response.TransportResponse, 0, len(transports))
	for _, transport := range transports {
		items = append(items, response.TransportToResponse(transport, s.fileURL(transport.FilePath)))
	}

	return items, nil
}

// storeChittiFile writes the upload under <upload_dir>/shipment_chittis/YYYY/MM/
// and returns the path relative to the upload dir.
func (s *shipmentService) storeChittiFile(transportID uuid.UUID, filename string, file io.Reader) (string, error) {
	now := time.Now()
	relDir := filepath.Join("shipment_chittis", now.Format("2006"), now.Format("01"))
	absDir := filepath.Join(s.config.Media.UploadDir, relDir)

	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// Prefix with the transport id so filenames never collide
	safeName := transportID.String() + "-" + filepath.Base(filename)
	relPath := filepath.Join(relDir, safeName)

	out, err := os.Create(filepath.Join(s.config.Media.UploadDir, relPath))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return relPath, nil
}

func (s *shipmentService) fileURL(relPath *string) *string {
	if relPath == nil {
		return nil
	}
	url := "/media/" + filepath.ToSlash(*relPath)
	return &url
}
