package dto

type ServiceDTO struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	Bookable      bool   `json:"bookable"`
	ContactNumber string `json:"contact_number,omitempty"`
}

type CatalogueDTO struct {
	BusinessName string       `json:"business_name"`
	Slogan       string       `json:"slogan"`
	Services     []ServiceDTO `json:"services"`
}

type BarberDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
