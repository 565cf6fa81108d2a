package request

type TicketRequest struct {
	Subject     string `json:"subject" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,oneof=technical billing feature general"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high urgent"`
	Description string `json:"description" validate:"required"`
}
