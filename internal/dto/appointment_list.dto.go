package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	BarberID        uint      `json:"barber_id"`
	BarberName      string    `json:"barber_name"`
	ServiceType     string    `json:"service_type"`
	CreatedAt       time.Time `json:"created_at"`
}
