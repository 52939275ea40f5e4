package httpserver

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-gallery/internal/aggregate"
	"portfolio-gallery/internal/domain"
	"portfolio-gallery/internal/logging"
	"portfolio-gallery/internal/query"
	sessionsvc "portfolio-gallery/internal/service/session"
	"portfolio-gallery/internal/share"
)

type galleryService interface {
	List(q query.Query) []domain.Project
	Get(id int) (*domain.Project, error)
	Categories() []string
	Technologies() aggregate.Distribution
	CategoryCounts() aggregate.Distribution
	Featured() []domain.Project
	Summary() aggregate.Summary
	Share(id int) (share.Links, error)
}

type sessionService interface {
	Start() (sessionsvc.View, error)
	View(id string) (sessionsvc.View, error)
	UpdateQuery(id string, in sessionsvc.QueryInput) (sessionsvc.View, error)
	Select(id string, projectID int) (sessionsvc.View, error)
	Dismiss(id string) (sessionsvc.View, error)
	Toggle(id, name string) (sessionsvc.View, error)
	End(id string)
}

// Deps carries the services the routes are built on.
type Deps struct {
	Gallery     galleryService
	Sessions    sessionService
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db Pinger, deps Deps) (*gin.Engine, error) {
	if deps.Gallery == nil || deps.Sessions == nil {
		return nil, errors.New("gallery and session services are required")
	}
	logger = logging.OrNop(logger)

	router := gin.New()
	router.Use(
		requestLogger(logger),
		gin.RecoveryWithWriter(zap.NewStdLog(logger).Writer()),
		cors.New(corsConfig(deps.CORSOrigins)),
	)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	gallery := galleryHandlers{svc: deps.Gallery}
	router.GET("/projects", gallery.list)
	router.GET("/projects/:id", gallery.get)
	router.GET("/projects/:id/share", gallery.share)
	router.GET("/categories", gallery.categories)
	router.GET("/featured", gallery.featured)
	router.GET("/stats/technologies", gallery.technologies)
	router.GET("/stats/categories", gallery.categoryCounts)
	router.GET("/stats/summary", gallery.summary)

	sessions := sessionHandlers{svc: deps.Sessions}
	router.POST("/sessions", sessions.start)
	scoped := router.Group("/sessions/:sessionID", sessionMiddleware(deps.Sessions))
	scoped.GET("", sessions.view)
	scoped.DELETE("", sessions.end)
	scoped.PATCH("/query", sessions.updateQuery)
	scoped.PUT("/selection", sessions.selectProject)
	scoped.DELETE("/selection", sessions.dismiss)
	scoped.POST("/toggles/:toggle", sessions.toggle)

	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "route not found")
	})

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
