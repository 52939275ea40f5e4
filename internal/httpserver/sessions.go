package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sessionsvc "portfolio-gallery/internal/service/session"
)

type sessionHandlers struct {
	svc sessionService
}

type selectionRequest struct {
	ProjectID int `json:"projectId" binding:"required"`
}

func (h sessionHandlers) start(c *gin.Context) {
	view, err := h.svc.Start()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// view returns the snapshot resolved by sessionMiddleware.
func (h sessionHandlers) view(c *gin.Context) {
	view, ok := c.Request.Context().Value(sessionCtxKey).(sessionsvc.View)
	if !ok {
		writeError(c, http.StatusInternalServerError, "session missing from context")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h sessionHandlers) end(c *gin.Context) {
	h.svc.End(c.Param("sessionID"))
	c.Status(http.StatusNoContent)
}

func (h sessionHandlers) updateQuery(c *gin.Context) {
	var in sessionsvc.QueryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "invalid query body")
		return
	}
	h.respond(c, func(id string) (sessionsvc.View, error) { return h.svc.UpdateQuery(id, in) })
}

func (h sessionHandlers) selectProject(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "projectId is required")
		return
	}
	h.respond(c, func(id string) (sessionsvc.View, error) { return h.svc.Select(id, req.ProjectID) })
}

func (h sessionHandlers) dismiss(c *gin.Context) {
	h.respond(c, h.svc.Dismiss)
}

func (h sessionHandlers) toggle(c *gin.Context) {
	name := c.Param("toggle")
	h.respond(c, func(id string) (sessionsvc.View, error) { return h.svc.Toggle(id, name) })
}

func (h sessionHandlers) respond(c *gin.Context, op func(id string) (sessionsvc.View, error)) {
	view, err := op(c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
