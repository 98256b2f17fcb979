package handlers

import (
	"errors"
	"net/http"
	"strconv"

	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"
	"github.com/shimokura-meg/schedule-checklist/internal/dto"
	"github.com/shimokura-meg/schedule-checklist/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// Create godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateEventRequest  true  "Event body"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  map[string]string
// @Router       /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.svc.Create(c.Request.Context(), req.Name, req.Date, recurrenceFromDTO(req.Recurrence))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, eventToResponse(e))
}

// List godoc
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {object}  dto.ListEventsResponse
// @Failure      500  {object}  map[string]string
// @Router       /events [get]
func (h *EventHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListEventsResponse{Items: eventsToResponses(list)})
}

// GetByID godoc
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  dto.EventResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /events/{id} [get]
func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	e, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventToResponse(e))
}

// Update godoc
// @Summary      Rename an event or edit its date
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Event ID"
// @Param        body  body      dto.UpdateEventRequest  true  "Partial update"
// @Success      200   {object}  dto.EventResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == nil && req.Date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	e, err := h.svc.Update(c.Request.Context(), id, req.Name, req.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventToResponse(e))
}

// Delete godoc
// @Summary      Delete an event and all its items
// @Tags         events
// @Param        id   path  int  true  "Event ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondServiceError(c *gin.Context, err error) {
	if service.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func recurrenceFromDTO(r dto.RecurrenceDTO) dom.Recurrence {
	days := make([]dom.Weekday, 0, len(r.DaysOfWeek))
	for _, d := range r.DaysOfWeek {
		days = append(days, dom.Weekday(d))
	}
	return dom.Recurrence{Kind: dom.RecurrenceKind(r.Kind), Days: days}
}

func recurrenceToDTO(r dom.Recurrence) dto.RecurrenceDTO {
	days := make([]string, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, string(d))
	}
	return dto.RecurrenceDTO{Kind: string(r.Kind), DaysOfWeek: days}
}

func eventToResponse(e dom.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:         e.ID,
		Name:       e.Name,
		Date:       e.Date,
		Recurrence: recurrenceToDTO(e.Recurrence),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func eventsToResponses(list []dom.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, len(list))
	for i := range list {
		out[i] = eventToResponse(list[i])
	}
	return out
}
