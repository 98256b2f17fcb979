package handlers

import (
	"net/http"

	"github.com/shimokura-meg/schedule-checklist/internal/assets"

	"github.com/gin-gonic/gin"
)

// WorkerHandler exposes the asset-cache worker at the HTTP boundary:
// the asset intercept route and the push-relay hook.
type WorkerHandler struct {
	worker *assets.Worker
}

func NewWorkerHandler(w *assets.Worker) *WorkerHandler {
	return &WorkerHandler{worker: w}
}

// Intercept godoc
// @Summary      Serve a static asset, cache-first with live fallback
// @Tags         worker
// @Param        filepath  path  string  true  "Asset path"
// @Success      200
// @Failure      504
// @Router       /assets/{filepath} [get]
func (h *WorkerHandler) Intercept(c *gin.Context) {
	path := c.Param("filepath")
	if path == "" {
		path = "/"
	}
	h.worker.Serve(c.Request.Context(), c.Writer, path)
}

// Push godoc
// @Summary      Relay a push payload as a notification
// @Tags         worker
// @Accept       json
// @Param        body  body  assets.PushPayload  true  "Push payload"
// @Success      202
// @Failure      400  {object}  map[string]string
// @Router       /worker/push [post]
func (h *WorkerHandler) Push(c *gin.Context) {
	var payload assets.PushPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.worker.HandlePush(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}
