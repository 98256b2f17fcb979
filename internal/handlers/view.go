package handlers

import (
	"net/http"

	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"
	"github.com/shimokura-meg/schedule-checklist/internal/dto"
	"github.com/shimokura-meg/schedule-checklist/internal/schedule"
	"github.com/shimokura-meg/schedule-checklist/internal/service"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	svc *service.ViewService
}

func NewViewHandler(svc *service.ViewService) *ViewHandler {
	return &ViewHandler{svc: svc}
}

// Grouped godoc
// @Summary      Date-grouped view of upcoming occurrences with their items
// @Tags         view
// @Produce      json
// @Success      200  {object}  dto.ViewResponse
// @Failure      500  {object}  map[string]string
// @Router       /view [get]
func (h *ViewHandler) Grouped(c *gin.Context) {
	groups, err := h.svc.Grouped(c.Request.Context(), schedule.DefaultHorizonDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewToResponse(groups))
}

func viewToResponse(groups []dom.DateGroup) dto.ViewResponse {
	out := dto.ViewResponse{Groups: make([]dto.DateGroupResponse, len(groups))}
	for i, g := range groups {
		occs := make([]dto.OccurrenceResponse, len(g.Entries))
		for j, e := range g.Entries {
			occs[j] = dto.OccurrenceResponse{
				Event:        eventToResponse(e.Occurrence.Event),
				DisplayDate:  e.Occurrence.DisplayDate,
				IsOccurrence: e.Occurrence.IsOccurrence,
				Items:        itemsToResponses(e.Items),
			}
		}
		out.Groups[i] = dto.DateGroupResponse{Date: g.Date, Occurrences: occs}
	}
	return out
}
