package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	scheduleuc "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

type BlockedDatesHandler struct {
	list    *scheduleuc.ListBlockedDates
	block   *scheduleuc.BlockDate
	unblock *scheduleuc.UnblockDate
}

func NewBlockedDatesHandler(
	list *scheduleuc.ListBlockedDates,
	block *scheduleuc.BlockDate,
	unblock *scheduleuc.UnblockDate,
) *BlockedDatesHandler {
	return &BlockedDatesHandler{list: list, block: block, unblock: unblock}
}

type blockDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

func (h *BlockedDatesHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), c.Query("from"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *BlockedDatesHandler) Create(c *gin.Context) {
	var req blockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	bd, err := h.block.Execute(c.Request.Context(), scheduleuc.BlockDateInput{
		Date:   req.Date,
		Reason: req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, bd)
}

func (h *BlockedDatesHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.unblock.Execute(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	httpresp.NoContent(c)
}
