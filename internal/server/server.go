// Package server exposes the coaching pipeline as an HTTP JSON API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreevorobei/compass-app/internal/service"
)

type Server struct {
	assistant *service.Assistant
	data      *service.DataService
	usage     *service.UsageTracker
	db        *pgxpool.Pool
}

type Deps struct {
	Assistant *service.Assistant
	Data      *service.DataService
	Usage     *service.UsageTracker
	DB        *pgxpool.Pool
}

func New(deps Deps) *Server {
	return &Server{
		assistant: deps.Assistant,
		data:      deps.Data,
		usage:     deps.Usage,
		db:        deps.DB,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(Recover(), RequestLogger())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	{
		api.POST("/ai", s.handleAI)
		api.GET("/models", s.handleModels)
		api.GET("/profile/:userID", s.handleProfile)
		api.GET("/skills/:userID", s.handleSkills)
		api.GET("/goals/:userID", s.handleGoals)
		api.GET("/usage/summary", s.handleCostSummary)
		api.GET("/usage/:userID", s.handleUsage)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
