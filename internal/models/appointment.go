package models

import "time"

// Appointment is one booked slot. The unique index on (barber, slot start,
// service type) is what serialises concurrent bookings.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:30;not null" json:"client_phone"`

	AppointmentDate time.Time `gorm:"not null;uniqueIndex:idx_appointments_barber_slot,priority:2;index" json:"appointment_date"`

	BarberID uint   `gorm:"not null;uniqueIndex:idx_appointments_barber_slot,priority:1" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber"`

	ServiceType string `gorm:"size:20;not null;uniqueIndex:idx_appointments_barber_slot,priority:3" json:"service_type"`

	CreatedAt time.Time `json:"created_at"`
}
