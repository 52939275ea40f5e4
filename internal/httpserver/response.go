package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-gallery/internal/domain"
	"portfolio-gallery/internal/session"
)

const (
	defaultPageSize = 100
	maxPageSize     = 500
)

type projectList struct {
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Count   int              `json:"count"`
	Total   int              `json:"total"`
	Results []domain.Project `json:"results"`
}

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func buildProjectList(projects []domain.Project, limit, offset int) projectList {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + limit
	if end > len(projects) {
		end = len(projects)
	}
	sliced := []domain.Project{}
	if offset < len(projects) {
		sliced = projects[offset:end]
	}

	return projectList{
		Limit:   limit,
		Offset:  offset,
		Count:   len(sliced),
		Total:   len(projects),
		Results: sliced,
	}
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{StatusCode: status, Message: msg})
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrUnknownToggle):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
