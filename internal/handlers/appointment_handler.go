package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/export"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER (admin)
// ======================================================

type AppointmentHandler struct {
	list   *appointment.ListAppointments
	cancel *appointment.CancelAppointment
	agenda *export.AgendaPDF
	log    *zap.Logger
}

func NewAppointmentHandler(
	list *appointment.ListAppointments,
	cancel *appointment.CancelAppointment,
	agenda *export.AgendaPDF,
	log *zap.Logger,
) *AppointmentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AppointmentHandler{
		list:   list,
		cancel: cancel,
		agenda: agenda,
		log:    log,
	}
}

// GET /api/admin/appointments?date=YYYY-MM-DD&barber_id=N
func (h *AppointmentHandler) List(c *gin.Context) {
	barberID, ok := parseOptionalUint(c, "barber_id")
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), appointment.ListAppointmentsInput{
		Date:     c.Query("date"),
		BarberID: barberID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// DELETE /api/admin/appointments/:id
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	h.log.Info("appointment cancelled",
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("barber_id", ap.BarberID),
	)
	httpresp.NoContent(c)
}

// GET /api/admin/appointments/export?date=YYYY-MM-DD
func (h *AppointmentHandler) Export(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "La fecha es obligatoria.")
		return
	}

	out, err := h.list.Execute(c.Request.Context(), appointment.ListAppointmentsInput{Date: date})
	if err != nil {
		writeError(c, err)
		return
	}

	pdf, err := h.agenda.Render(date, out)
	if err != nil {
		h.log.Error("render agenda failed", zap.String("date", date), zap.Error(err))
		httperr.Internal(c, "export_failed", "No se pudo generar el PDF.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="agenda-`+date+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
