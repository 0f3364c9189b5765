package appointment

import (
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	ErrNotFound  = errors.New("appointment.repository: record not found")
	ErrSlotTaken = errors.New("appointment.repository: barber already booked for this slot")
)

// Business error codes surfaced to clients.
const (
	CodeValidation         = "validation_error"
	CodeInvalidDateOrTime  = "invalid_date_or_time"
	CodeInvalidPhone       = "invalid_phone"
	CodeInvalidSlot        = "invalid_slot"
	CodeSlotInPast         = "slot_in_past"
	CodeBarberNotFound     = "barber_not_found"
	CodeServiceNotBookable = "service_not_bookable"

	CodeDateBlocked       = "date_blocked"
	CodeDateClosed        = "date_closed"
	CodeBarberUnavailable = "barber_unavailable"
	CodeSlotTaken         = "slot_taken"
	CodeNoAvailability    = "no_availability"

	CodeStoreUnavailable    = "store_unavailable"
	CodeAppointmentNotFound = "appointment_not_found"
)

var validationCodes = []string{
	CodeValidation,
	CodeInvalidDateOrTime,
	CodeInvalidPhone,
	CodeInvalidSlot,
	CodeSlotInPast,
	CodeBarberNotFound,
	CodeServiceNotBookable,
}

// IsValidation reports whether err was caused by caller input.
func IsValidation(err error) bool {
	for _, code := range validationCodes {
		if httperr.IsBusiness(err, code) {
			return true
		}
	}
	return false
}

// StoreUnavailable wraps a backend failure so callers can tell it apart
// from business rejections.
func StoreUnavailable(err error) error {
	return httperr.Wrap(CodeStoreUnavailable, err)
}
