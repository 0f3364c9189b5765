package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	scheduleuc "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

type ScheduleOverridesHandler struct {
	list   *scheduleuc.ListOverrides
	save   *scheduleuc.SaveOverride
	delete *scheduleuc.DeleteOverride
}

func NewScheduleOverridesHandler(
	list *scheduleuc.ListOverrides,
	save *scheduleuc.SaveOverride,
	del *scheduleuc.DeleteOverride,
) *ScheduleOverridesHandler {
	return &ScheduleOverridesHandler{list: list, save: save, delete: del}
}

type saveOverrideRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsClosed  bool   `json:"is_closed"`
	Reason    string `json:"reason"`
}

func (h *ScheduleOverridesHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), c.Query("from"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}

// PUT /api/admin/schedule-overrides  (upsert keyed by date)
func (h *ScheduleOverridesHandler) Upsert(c *gin.Context) {
	var req saveOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	o, err := h.save.Execute(c.Request.Context(), scheduleuc.SaveOverrideInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsClosed:  req.IsClosed,
		Reason:    req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, o)
}

func (h *ScheduleOverridesHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	httpresp.NoContent(c)
}
