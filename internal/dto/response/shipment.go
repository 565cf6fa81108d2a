package response

import (
	"time"

	"accountease/internal/data/entity"
)

type ShipmentResponse struct {
	ID               string   `json:"id"`
	Applicant        string   `json:"applicant"`
	InvoiceNo        string   `json:"invoice_no"`
	BankName         string   `json:"bank_name"`
	BankRefNo        *string  `json:"bank_ref_no,omitempty"`
	InsuranceCompany *string  `json:"insurance_company,omitempty"`
	Amount           float64  `json:"amount"`
	Currency         string   `json:"currency"`
	AmountDisplay    string   `json:"amount_display"`
	PriceTerms       string   `json:"price_terms"`
	PaymentTerms     string   `json:"payment_terms"`
	DispatchDate     string   `json:"dispatch_date"`
	DocReceivedDate  *string  `json:"doc_received_date,omitempty"`
	ETADate          *string  `json:"eta_date,omitempty"`
	SettlementDate   *string  `json:"settlement_date,omitempty"`
	MarginAmount     *float64 `json:"margin_amount,omitempty"`
	MarginDate       *string  `json:"margin_date,omitempty"`
	CustomsEntryDate *string  `json:"customs_entry_date,omitempty"`
	DocToBankDate    *string  `json:"doc_to_bank,omitempty"`
	PPNo             *string  `json:"pp_no,omitempty"`
	Vanshar          *string  `json:"vanshar,omitempty"`
	CreatedBy        *string  `json:"created_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TransportResponse struct {
	ID         string  `json:"id"`
	ShipmentID string  `json:"shipment_id"`
	Carrier    *string `json:"carrier,omitempty"`
	FileURL    *string `json:"file_url,omitempty"`
	DateIssued string  `json:"date_issued"`
}

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func ShipmentToResponse(shipment *entity.Shipment) ShipmentResponse {
	resp := ShipmentResponse{
		ID:               shipment.ID.String(),
		Applicant:        shipment.Applicant,
		InvoiceNo:        shipment.InvoiceNo,
		BankName:         shipment.BankName,
		BankRefNo:        shipment.BankRefNo,
		InsuranceCompany: shipment.InsuranceCompany,
		Amount:           shipment.Amount,
		Currency:         shipment.Currency,
		AmountDisplay:    shipment.AmountDisplay(),
		PriceTerms:       shipment.PriceTerms,
		PaymentTerms:     shipment.PaymentTerms,
		DispatchDate:     shipment.DispatchDate.Format(dateLayout),
		DocReceivedDate:  formatDate(shipment.DocReceivedDate),
		ETADate:          formatDate(shipment.ETADate),
		SettlementDate:   formatDate(shipment.SettlementDate),
		MarginAmount:     shipment.MarginAmount,
		MarginDate:       formatDate(shipment.MarginDate),
		CustomsEntryDate: formatDate(shipment.CustomsEntryDate),
		DocToBankDate:    formatDate(shipment.DocToBankDate),
		PPNo:             shipment.PPNo,
		Vanshar:          shipment.Vanshar,
		CreatedAt:        shipment.CreatedAt,
		UpdatedAt:        shipment.UpdatedAt,
	}

	if shipment.CreatedBy != nil {
		createdBy := shipment.CreatedBy.String()
		resp.CreatedBy = &createdBy
	}

	return resp
}

func TransportToResponse(transport *entity.ShipmentTransport, fileURL *string) TransportResponse {
	return TransportResponse{
		ID:         transport.ID.String(),
		ShipmentID: transport.ShipmentID.String(),
		Carrier:    transport.Carrier,
		FileURL:    fileURL,
		DateIssued: transport.DateIssued.Format(dateLayout),
	}
}
