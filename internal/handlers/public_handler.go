package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/session"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// BarberLister is the slice of the appointment store the public roster needs.
type BarberLister interface {
	ListBarbers(ctx context.Context) ([]models.Barber, error)
}

// Catalogue describes the shop as published to clients.
type Catalogue struct {
	BusinessName  string
	Slogan        string
	ContactNumber string
	Prices        domain.PriceTable
}

type PublicHandler struct {
	catalogue    Catalogue
	barbers      BarberLister
	availability *appointment.GetAvailability
	submit       *appointment.SubmitBooking
	confirmation *appointment.GetConfirmation
	sessions     *session.SelectionService
	metrics      *metrics.Metrics
	log          *zap.Logger
}

func NewPublicHandler(
	catalogue Catalogue,
	barbers BarberLister,
	availability *appointment.GetAvailability,
	submit *appointment.SubmitBooking,
	confirmation *appointment.GetConfirmation,
	sessions *session.SelectionService,
	m *metrics.Metrics,
	log *zap.Logger,
) *PublicHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PublicHandler{
		catalogue:    catalogue,
		barbers:      barbers,
		availability: availability,
		submit:       submit,
		confirmation: confirmation,
		sessions:     sessions,
		metrics:      m,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:mm
	BarberID    *uint  `json:"barber_id,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
}

////////////////////////////////////////////////////////
// CATALOGUE
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services := make([]dto.ServiceDTO, 0, len(domain.ServiceTypes))
	for _, st := range domain.ServiceTypes {
		s := dto.ServiceDTO{
			Type:        string(st),
			Name:        st.Label(),
			Description: st.Description(),
			Price:       h.catalogue.Prices.For(st),
			Bookable:    st.Timed(),
		}
		if !s.Bookable {
			s.ContactNumber = h.catalogue.ContactNumber
		}
		services = append(services, s)
	}

	httpresp.OK(c, dto.CatalogueDTO{
		BusinessName: h.catalogue.BusinessName,
		Slogan:       h.catalogue.Slogan,
		Services:     services,
	})
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.barbers.ListBarbers(c.Request.Context())
	if err != nil {
		h.log.Error("list barbers failed", zap.Error(err))
		writeError(c, domain.StoreUnavailable(err))
		return
	}

	out := make([]dto.BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.BarberDTO{ID: b.ID, Name: b.Name})
	}
	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		h.metrics.AvailabilityRequest("invalid")
		httperr.BadRequest(c, "missing_params", "La fecha es obligatoria.")
		return
	}

	grid, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		if grid != nil {
			// Store failure: serve the fail-closed grid so nothing can be booked.
			h.metrics.AvailabilityRequest("degraded")
			h.log.Error("availability degraded",
				zap.String("date", date),
				zap.String("request_id", middleware.RequestID(c)),
				zap.Error(err),
			)
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, grid)
			return
		}

		h.metrics.AvailabilityRequest("invalid")
		writeError(c, err)
		return
	}

	h.metrics.AvailabilityRequest("ok")
	httpresp.OK(c, grid)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.BookingAttempt("invalid_request")
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ctx := c.Request.Context()

	// A selection session fills in whatever the form left blank.
	if req.SessionID != "" {
		sel, err := h.sessions.Get(ctx, req.SessionID)
		if err != nil {
			h.metrics.BookingAttempt(httperr.CodeOf(err))
			writeErrorWithInput(c, err, req)
			return
		}
		if req.Date == "" {
			req.Date = sel.Date
		}
		if req.Time == "" {
			req.Time = sel.Time
		}
		if req.ServiceType == "" {
			req.ServiceType = sel.ServiceType
		}
	}

	ap, err := h.submit.Execute(ctx, appointment.SubmitBookingInput{
		Date:        req.Date,
		Time:        req.Time,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		BarberID:    req.BarberID,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		code := httperr.CodeOf(err)
		if code == "" {
			code = "internal_error"
		}
		h.metrics.BookingAttempt(code)
		if !domain.IsValidation(err) {
			h.log.Warn("booking rejected",
				zap.String("code", code),
				zap.String("date", req.Date),
				zap.String("time", req.Time),
				zap.String("request_id", middleware.RequestID(c)),
				zap.Error(err),
			)
		}
		writeErrorWithInput(c, err, req)
		return
	}

	h.metrics.BookingAttempt("created")

	if req.SessionID != "" {
		if err := h.sessions.ClearSlot(ctx, req.SessionID); err != nil {
			h.log.Warn("clear selection after booking failed",
				zap.String("session_id", req.SessionID),
				zap.Error(err),
			)
		}
	}

	local := ap.AppointmentDate.In(h.submit.Location())
	c.JSON(http.StatusCreated, gin.H{
		"id":           ap.ID,
		"reference":    fmt.Sprintf("#%d", ap.ID),
		"date":         local.Format(schedule.DateLayout),
		"time":         local.Format(schedule.ClockLayout),
		"barber_id":    ap.BarberID,
		"barber_name":  ap.Barber.Name,
		"service_type": ap.ServiceType,
	})
}

////////////////////////////////////////////////////////
// CONFIRMATION
////////////////////////////////////////////////////////

func (h *PublicHandler) GetAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	conf, err := h.confirmation.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, conf)
}
