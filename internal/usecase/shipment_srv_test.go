package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"accountease/internal/data/entity"
	"accountease/internal/data/repository"
	"accountease/internal/dto/request"
	"accountease/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeShipmentRepo struct {
	shipments []*entity.Shipment
}

func (f *fakeShipmentRepo) Create(ctx context.Context, shipment *entity.Shipment) error {
	f.shipments = append(f.shipments, shipment)
	return nil
}

func (f *fakeShipmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	for _, s := range f.shipments {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeShipmentRepo) FindByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Shipment, error) {
	for _, s := range f.shipments {
		if s.InvoiceNo == invoiceNo {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeShipmentRepo) FindAll(ctx context.Context, applicant string, limit, offset int) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	for _, s := range f.shipments {
		if applicant == "" || strings.Contains(strings.ToLower(s.Applicant), strings.ToLower(applicant)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShipmentRepo) CountAll(ctx context.Context, applicant string) (int64, error) {
	out, _ := f.FindAll(ctx, applicant, 0, 0)
	return int64(len(out)), nil
}

func (f *fakeShipmentRepo) Update(ctx context.Context, shipment *entity.Shipment) error {
	for i, s := range f.shipments {
		if s.ID == shipment.ID {
			f.shipments[i] = shipment
			return nil
		}
	}
	return nil
}

func (f *fakeShipmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.shipments[:0]
	for _, s := range f.shipments {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.shipments = kept
	return nil
}

type fakeTransportRepo struct {
	transports []*entity.ShipmentTransport
}

func (f *fakeTransportRepo) Create(ctx context.Context, transport *entity.ShipmentTransport) error {
	f.transports = append(f.transports, transport)
	return nil
}

func (f *fakeTransportRepo) FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*entity.ShipmentTransport, error) {
	var out []*entity.ShipmentTransport
	for _, t := range f.transports {
		if t.ShipmentID == shipmentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransportRepo) DeleteByShipment(ctx context.Context, shipmentID uuid.UUID) error {
	kept := f.transports[:0]
	for _, t := range f.transports {
		if t.ShipmentID != shipmentID {
			kept = append(kept, t)
		}
	}
	f.transports = kept
	return nil
}

func newShipmentService(t *testing.T) (ShipmentService, *fakeShipmentRepo, *fakeTransportRepo) {
	t.Helper()

	shipments := &fakeShipmentRepo{}
	transports := &fakeTransportRepo{}

	repo := &repository.Repository{
		Shipment:  shipments,
		Transport: transports,
	}

	config := &utils.Config{
		Media: utils.MediaConfig{UploadDir: t.TempDir()},
	}

	return NewShipmentService(repo, config, zap.NewNop()), shipments, transports
}

func shipmentRequest(invoiceNo string) *request.ShipmentRequest {
	docReceived := "2026-02-03"
	return &request.ShipmentRequest{
		Applicant:       "Himalaya Traders",
		InvoiceNo:       invoiceNo,
		BankName:        "Nabil",
		Amount:          12500.50,
		Currency:        "USD",
		PriceTerms:      "LC",
		PaymentTerms:    "CIF",
		DispatchDate:    "2026-02-01",
		DocReceivedDate: &docReceived,
	}
}

func TestShipmentCreate(t *testing.T) {
	svc, shipments, _ := newShipmentService(t)
	creator := uuid.New()

	resp, err := svc.Create(context.Background(), creator.String(), shipmentRequest("INV-001"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if resp.InvoiceNo != "INV-001" {
		t.Errorf("InvoiceNo = %s, want INV-001", resp.InvoiceNo)
	}
	if resp.AmountDisplay != "USD 12500.50" {
		t.Errorf("AmountDisplay = %q, want USD 12500.50", resp.AmountDisplay)
	}

	if len(shipments.shipments) != 1 {
		t.Fatalf("expected 1 shipment, got %d", len(shipments.shipments))
	}
	saved := shipments.shipments[0]
	if saved.DispatchDate != time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("DispatchDate = %v", saved.DispatchDate)
	}
	if saved.DocReceivedDate == nil || !saved.DocReceivedDate.Equal(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DocReceivedDate = %v", saved.DocReceivedDate)
	}
	if saved.CreatedBy == nil || *saved.CreatedBy != creator {
		t.Errorf("CreatedBy = %v, want %s", saved.CreatedBy, creator)
	}
}

func TestShipmentCreateRejectsDuplicateInvoice(t *testing.T) {
	svc, shipments, _ := newShipmentService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, uuid.New().String(), shipmentRequest("INV-001")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(ctx, uuid.New().String(), shipmentRequest("INV-001"))
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate invoice error, got %v", err)
	}
	if len(shipments.shipments) != 1 {
		t.Errorf("duplicate must not persist, got %d shipments", len(shipments.shipments))
	}
}

func TestShipmentCreateRejectsInvalidInput(t *testing.T) {
	svc, _, _ := newShipmentService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *request.ShipmentRequest)
	}{
		{"unknown bank", func(req *request.ShipmentRequest) { req.BankName = "Unknown Bank" }},
		{"unknown currency", func(req *request.ShipmentRequest) { req.Currency = "EUR" }},
		{"bad date format", func(req *request.ShipmentRequest) { req.DispatchDate = "01/02/2026" }},
		{"missing applicant", func(req *request.ShipmentRequest) { req.Applicant = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := shipmentRequest("INV-X")
			tt.mutate(req)

			if _, err := svc.Create(ctx, uuid.New().String(), req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestShipmentUpdateKeepsInvoiceUnique(t *testing.T) {
	svc, shipments, _ := newShipmentService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, uuid.New().String(), shipmentRequest("INV-001")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(ctx, uuid.New().String(), shipmentRequest("INV-002"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Renaming the second onto the first's invoice must fail
	_, err = svc.Update(ctx, second.ID, shipmentRequest("INV-001"))
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate invoice error, got %v", err)
	}

	// Updating without changing the invoice is fine
	req := shipmentRequest("INV-002")
	req.Applicant = "Everest Exports"
	resp, err := svc.Update(ctx, second.ID, req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if resp.Applicant != "Everest Exports" {
		t.Errorf("Applicant = %s, want Everest Exports", resp.Applicant)
	}
	if len(shipments.shipments) != 2 {
		t.Errorf("expected 2 shipments, got %d", len(shipments.shipments))
	}
}

func TestShipmentListFiltersByApplicant(t *testing.T) {
	svc, _, _ := newShipmentService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, uuid.New().String(), shipmentRequest("INV-001")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other := shipmentRequest("INV-002")
	other.Applicant = "Everest Exports"
	if _, err := svc.Create(ctx, uuid.New().String(), other); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := svc.List(ctx, &request.ShipmentListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Applicant:        "everest",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Pagination.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected 1 match, got total=%d items=%d", resp.Pagination.Total, len(resp.Data))
	}
	if resp.Data[0].Applicant != "Everest Exports" {
		t.Errorf("matched wrong applicant: %s", resp.Data[0].Applicant)
	}
}

func TestAttachTransportStoresChittiFile(t *testing.T) {
	svc, _, transports := newShipmentService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, uuid.New().String(), shipmentRequest("INV-001"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	carrier := "Gandaki"
	resp, err := svc.AttachTransport(ctx, created.ID, &carrier, "chitti.pdf", strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if resp.Carrier == nil || *resp.Carrier != "Gandaki" {
		t.Errorf("Carrier = %v, want Gandaki", resp.Carrier)
	}
	if resp.FileURL == nil || !strings.HasPrefix(*resp.FileURL, "/media/shipment_chittis/") {
		t.Errorf("FileURL = %v, want /media/shipment_chittis/... prefix", resp.FileURL)
	}

	if len(transports.transports) != 1 {
		t.Fatalf("expected 1 transport, got %d", len(transports.transports))
	}
	stored := transports.transports[0]
	if stored.FilePath == nil {
		t.Fatal("expected a stored file path")
	}

	// The upload must land on disk with the written content
	svcImpl := svc.(*shipmentService)
	content, err := os.ReadFile(filepath.Join(svcImpl.config.Media.UploadDir, *stored.FilePath))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "pdf-bytes" {
		t.Errorf("stored content = %q", content)
	}
}

func TestAttachTransportWithoutFile(t *testing.T) {
	svc, _, transports := newShipmentService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, uuid.New().String(), shipmentRequest("INV-001"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := svc.AttachTransport(ctx, created.ID, nil, "", nil)
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if resp.FileURL != nil {
		t.Errorf("FileURL = %v, want nil", resp.FileURL)
	}
	if transports.transports[0].FilePath != nil {
		t.Error("expected no stored file path")
	}
}

func TestAttachTransportUnknownShipment(t *testing.T) {
	svc, _, _ := newShipmentService(t)

	_, err := svc.AttachTransport(context.Background(), uuid.New().String(), nil, "", nil)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}
