package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-gallery/internal/query"
)

type galleryHandlers struct {
	svc galleryService
}

func (h galleryHandlers) list(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := intQuery(c, "offset")
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid offset")
		return
	}

	q := query.Query{Text: c.Query("q"), Category: c.Query("category")}
	c.JSON(http.StatusOK, buildProjectList(h.svc.List(q), limit, offset))
}

func (h galleryHandlers) get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h galleryHandlers) share(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	links, err := h.svc.Share(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h galleryHandlers) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"results": h.svc.Categories()})
}

func (h galleryHandlers) featured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"results": h.svc.Featured()})
}

func (h galleryHandlers) technologies(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Technologies())
}

func (h galleryHandlers) categoryCounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CategoryCounts())
}

func (h galleryHandlers) summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary())
}

// projectID parses :id and writes a 400 when it is not a positive integer.
func projectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		writeError(c, http.StatusBadRequest, "invalid project id")
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
