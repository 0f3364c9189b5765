package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/session"
)

// ======================================================
// HANDLER
// ======================================================

type SessionHandler struct {
	sessions *session.SelectionService
}

func NewSessionHandler(sessions *session.SelectionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type createSessionRequest struct {
	ServiceType string `json:"service_type"`
}

type selectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type selectSlotRequest struct {
	Time string `json:"time" binding:"required"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
			return
		}
	}

	sel, err := h.sessions.Create(c.Request.Context(), req.ServiceType)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, sel)
}

func (h *SessionHandler) Get(c *gin.Context) {
	sel, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, sel)
}

func (h *SessionHandler) SelectDate(c *gin.Context) {
	var req selectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	sel, err := h.sessions.SelectDate(c.Request.Context(), c.Param("id"), req.Date)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, sel)
}

func (h *SessionHandler) SelectSlot(c *gin.Context) {
	var req selectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	sel, err := h.sessions.SelectSlot(c.Request.Context(), c.Param("id"), req.Time)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, sel)
}

func (h *SessionHandler) Clear(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	httpresp.NoContent(c)
}
