package appointment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type GetConfirmation struct {
	repo     domain.Repository
	settings Settings
}

func NewGetConfirmation(repo domain.Repository, settings Settings) *GetConfirmation {
	return &GetConfirmation{repo: repo, settings: settings}
}

func (uc *GetConfirmation) Execute(
	ctx context.Context,
	appointmentID uint,
) (*dto.ConfirmationDTO, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness(domain.CodeAppointmentNotFound)
	}
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	st := domain.ServiceType(ap.ServiceType)
	local := ap.AppointmentDate.In(uc.settings.location())

	return &dto.ConfirmationDTO{
		ID:           ap.ID,
		Reference:    fmt.Sprintf("#%d", ap.ID),
		Date:         local.Format(schedule.DateLayout),
		Time:         local.Format(schedule.ClockLayout),
		ServiceType:  ap.ServiceType,
		ServiceLabel: st.Label(),
		Price:        uc.settings.Prices.For(st),
		BarberName:   ap.Barber.Name,
		ClientName:   ap.ClientName,
	}, nil
}
