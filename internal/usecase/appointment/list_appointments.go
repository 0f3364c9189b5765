package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListAppointmentsInput struct {
	Date     string // optional, YYYY-MM-DD
	BarberID *uint
}

type ListAppointments struct {
	repo     domain.Repository
	settings Settings
}

func NewListAppointments(
	repo domain.Repository,
	settings Settings,
) *ListAppointments {
	return &ListAppointments{
		repo:     repo,
		settings: settings,
	}
}

// Execute lists appointments ordered by slot start. Without a date every
// appointment is returned.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	loc := uc.settings.location()
	filter := domain.ListFilter{BarberID: in.BarberID}

	if date := strings.TrimSpace(in.Date); date != "" {
		day, err := timezone.ParseDate(date, loc)
		if err != nil {
			return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
		}
		from, to := dayWindow(day)
		filter.From = &from
		filter.To = &to
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toListDTO(ap, uc.settings))
	}

	return out, nil
}

func toListDTO(ap models.Appointment, settings Settings) dto.AppointmentListDTO {
	local := ap.AppointmentDate.In(settings.location())

	return dto.AppointmentListDTO{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate,
		Date:            local.Format(schedule.DateLayout),
		Time:            local.Format(schedule.ClockLayout),
		ClientName:      ap.ClientName,
		ClientPhone:     ap.ClientPhone,
		BarberID:        ap.BarberID,
		BarberName:      ap.Barber.Name,
		ServiceType:     ap.ServiceType,
		CreatedAt:       ap.CreatedAt,
	}
}
