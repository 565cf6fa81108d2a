package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Dropdown choices mirrored from the data-entry screens. Kept as plain
// string lists so the validator `oneof` tags and the entities agree.

var (
	PriceTermsChoices   = []string{"DAP", "LC", "TT", "N/A"}
	PaymentTermsChoices = []string{"CFR", "CIF", "FOB", "EXW", "N/A"}
	BankChoices         = []string{"Nabil", "NIC", "SBI", "Global", "Prabhu", "Machha", "Sanima", "Mega", "Kumari", "N/A"}
	InsuranceChoices    = []string{"IME", "Neco", "Sanima", "Salico", "Sidd", "N/A"}
	CurrencyChoices     = []string{"USD", "INR", "NPR"}
	VansharChoices      = []string{"Mechi", "Birgunj", "Biratnagar", "Tatopani", "TIA", "N/A"}
	CarrierChoices      = []string{
		"Mechi", "Koshi", "Sagarmatha", "Janakpur", "Bagmati", "Narayani",
		"Gandaki", "Dhaulagiri", "Lumbini", "Rapti", "Bheri", "Karnali",
		"Seti", "Mahakali", "N/A",
	}
)

// Shipment is a single import/export consignment record.
type Shipment struct {
	Base
	Applicant        string     `db:"applicant"`
	InvoiceNo        string     `db:"invoice_no"`
	BankName         string     `db:"bank_name"`
	BankRefNo        *string    `db:"bank_ref_no"`
	InsuranceCompany *string    `db:"insurance_company"`
	Amount           float64    `db:"amount"`
	Currency         string     `db:"currency"`
	PriceTerms       string     `db:"price_terms"`
	PaymentTerms     string     `db:"payment_terms"`
	DispatchDate     time.Time  `db:"dispatch_date"`
	DocReceivedDate  *time.Time `db:"doc_received_date"`
	ETADate          *time.Time `db:"eta_date"`
	SettlementDate   *time.Time `db:"settlement_date"`
	MarginAmount     *float64   `db:"margin_amount"`
	MarginDate       *time.Time `db:"margin_date"`
	CustomsEntryDate *time.Time `db:"customs_entry_date"`
	DocToBankDate    *time.Time `db:"doc_to_bank"`
	PPNo             *string    `db:"pp_no"`
	Vanshar          *string    `db:"vanshar"`
	CreatedBy        *uuid.UUID `db:"created_by"`
}

// AmountDisplay formats the amount with its currency, e.g. "USD 100.00".
func (s *Shipment) AmountDisplay() string {
	if s.Currency == "" {
		return "N/A"
	}
	return fmt.Sprintf("%s %.2f", s.Currency, s.Amount)
}

// ShipmentTransport is a transport leg attached to a shipment, optionally
// carrying an uploaded chitti document.
type ShipmentTransport struct {
	BaseSimple
	ShipmentID uuid.UUID `db:"shipment_id"`
	Carrier    *string   `db:"carrier"`
	FilePath   *string   `db:"file_path"`
	DateIssued time.Time `db:"date_issued"`
}
