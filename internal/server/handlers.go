package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andreevorobei/compass-app/internal/catalog"
	"github.com/andreevorobei/compass-app/internal/domain"
	"github.com/andreevorobei/compass-app/internal/service"
)

type aiRequest struct {
	Prompt    string `json:"prompt"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Context   string `json:"context"`
}

func (s *Server) handleAI(c *gin.Context) {
	var req aiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Prompt == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: prompt, user_id"})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a UUID"})
		return
	}

	ask := service.AskRequest{
		Prompt:  req.Prompt,
		UserID:  userID,
		Context: domain.Context(req.Context),
	}
	if req.SessionID != "" {
		sessionID, err := uuid.Parse(req.SessionID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id must be a UUID"})
			return
		}
		ask.SessionID = &sessionID
	}

	resp, err := s.assistant.Ask(c.Request.Context(), ask)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": catalog.All()})
}

func (s *Server) handleProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	profile, err := s.data.Profile(c.Request.Context(), userID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleSkills(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	skills, err := s.data.Skills(c.Request.Context(), userID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

func (s *Server) handleGoals(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	goals, err := s.data.Goals(c.Request.Context(), userID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (s *Server) handleUsage(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	summary, err := s.usage.Summary(c.Request.Context(), userID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"usage": summary})
}

func (s *Server) handleCostSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"costs": s.assistant.CostSummary()})
}

func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userID must be a UUID"})
		return uuid.Nil, false
	}
	return userID, true
}

func (s *Server) respondError(c *gin.Context, err error) {
	var genErr *service.GenerationError
	switch {
	case errors.Is(err, domain.ErrEmptyPrompt), errors.Is(err, domain.ErrMissingUserID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSkillNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &genErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to process AI request", "details": genErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process AI request", "details": err.Error()})
	}
}
