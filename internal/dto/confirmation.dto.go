package dto

// ConfirmationDTO is what a client sees after booking.
type ConfirmationDTO struct {
	ID           uint   `json:"id"`
	Reference    string `json:"reference"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ServiceType  string `json:"service_type"`
	ServiceLabel string `json:"service_label"`
	Price        int64  `json:"price"`
	BarberName   string `json:"barber_name"`
	ClientName   string `json:"client_name"`
}
