package request

type ShipmentRequest struct {
	Applicant        string   `json:"applicant" validate:"required,max=20"`
	InvoiceNo        string   `json:"invoice_no" validate:"required,max=20"`
	BankName         string   `json:"bank_name" validate:"required,oneof=Nabil NIC SBI Global Prabhu Machha Sanima Mega Kumari N/A"`
	BankRefNo        *string  `json:"bank_ref_no,omitempty" validate:"omitempty,max=20"`
	InsuranceCompany *string  `json:"insurance_company,omitempty" validate:"omitempty,oneof=IME Neco Sanima Salico Sidd N/A"`
	Amount           float64  `json:"amount" validate:"required,gte=0"`
	Currency         string   `json:"currency" validate:"required,oneof=USD INR NPR"`
	PriceTerms       string   `json:"price_terms" validate:"required,oneof=DAP LC TT N/A"`
	PaymentTerms     string   `json:"payment_terms" validate:"required,oneof=CFR CIF FOB EXW N/A"`
	DispatchDate     string   `json:"dispatch_date" validate:"required,datetime=2006-01-02"`
	DocReceivedDate  *string  `json:"doc_received_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ETADate          *string  `json:"eta_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SettlementDate   *string  `json:"settlement_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MarginAmount     *float64 `json:"margin_amount,omitempty" validate:"omitempty,gte=0"`
	MarginDate       *string  `json:"margin_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CustomsEntryDate *string  `json:"customs_entry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DocToBankDate    *string  `json:"doc_to_bank,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PPNo             *string  `json:"pp_no,omitempty" validate:"omitempty,max=20"`
	Vanshar          *string  `json:"vanshar,omitempty" validate:"omitempty,oneof=Mechi Birgunj Biratnagar Tatopani TIA N/A"`
}

type ShipmentListRequest struct {
	PaginatedRequest
	Applicant string `json:"applicant"`
}
