package service

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andreevorobei/compass-app/internal/cache"
	"github.com/andreevorobei/compass-app/internal/config"
	"github.com/andreevorobei/compass-app/internal/domain"
)

type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*domain.ChatSession, error)
	GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.ChatSession, error)
	InsertMessages(ctx context.Context, messages []domain.ChatMessage) error
}

// Assistant orchestrates one coaching request: cache check, routing,
// function-call application, conversation persistence, cache population and
// usage logging, in that order.
type Assistant struct {
	router   *Router
	cache    *cache.Cache
	executor *Executor
	sessions SessionStore
	usage    *UsageTracker
	maxCost  float64
}

func NewAssistant(router *Router, c *cache.Cache, executor *Executor, sessions SessionStore, usage *UsageTracker, maxCost float64) *Assistant {
	return &Assistant{
		router:   router,
		cache:    c,
		executor: executor,
		sessions: sessions,
		usage:    usage,
		maxCost:  maxCost,
	}
}

type AskRequest struct {
	Prompt    string
	UserID    uuid.UUID
	SessionID *uuid.UUID
	Context   domain.Context
}

type AskResponse struct {
	Content         string                  `json:"content"`
	Model           string                  `json:"model"`
	Cost            float64                 `json:"cost"`
	Cached          bool                    `json:"cached"`
	FunctionResults []domain.FunctionResult `json:"function_results,omitempty"`
}

// cachedAnswer is the shape stored under ai: keys.
type cachedAnswer struct {
	Content string  `json:"content"`
	Model   string  `json:"model"`
	Cost    float64 `json:"cost"`
}

func (a *Assistant) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	if req.Prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}
	if req.UserID == uuid.Nil {
		return nil, domain.ErrMissingUserID
	}

	// Identical (prompt, context) pairs short-circuit to the cached answer
	// at zero cost.
	key := cache.PromptKey(req.Prompt, string(req.Context))
	var cached cachedAnswer
	if a.cache.Get(ctx, key, &cached) {
		return &AskResponse{
			Content: cached.Content,
			Model:   cached.Model,
			Cost:    0,
			Cached:  true,
		}, nil
	}

	routed, err := a.router.Route(ctx, req.Prompt, RouteOptions{
		MaxCost: &a.maxCost,
		Context: req.Context,
	})
	if err != nil {
		return nil, err
	}

	var functionResults []domain.FunctionResult
	if len(routed.Response.FunctionCalls) > 0 {
		functionResults = a.executor.Apply(ctx, routed.Response.FunctionCalls, req.UserID)
	}

	session, err := a.resolveSession(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := a.saveConversation(ctx, req, session, routed, functionResults); err != nil {
		return nil, err
	}

	// Best-effort side effects: neither blocks nor fails the response.
	a.cache.Set(ctx, key, cachedAnswer{
		Content: routed.Response.Content,
		Model:   routed.Model,
		Cost:    routed.EstimatedCost,
	}, config.CacheTTLMedium)

	requestType := domain.RequestTypeChat
	if len(functionResults) > 0 {
		requestType = domain.RequestTypeFunctionCall
	}
	sessionID := session.ID
	a.usage.Record(ctx, domain.UsageRecord{
		UserID:      req.UserID,
		SessionID:   &sessionID,
		ModelName:   routed.Model,
		TokensUsed:  routed.Response.TokensUsed,
		CostUSD:     decimal.NewFromFloat(routed.EstimatedCost),
		RequestType: requestType,
	})

	return &AskResponse{
		Content:         routed.Response.Content,
		Model:           routed.Model,
		Cost:            routed.EstimatedCost,
		Cached:          false,
		FunctionResults: functionResults,
	}, nil
}

// CostSummary exposes the router's advisory in-process tally.
func (a *Assistant) CostSummary() map[string]float64 {
	return a.router.CostSummary()
}

func (a *Assistant) resolveSession(ctx context.Context, req AskRequest) (*domain.ChatSession, error) {
	if req.SessionID != nil {
		return a.sessions.GetByID(ctx, *req.SessionID)
	}
	return a.sessions.Create(ctx, req.UserID, sessionTitle(req.Prompt))
}

func (a *Assistant) saveConversation(ctx context.Context, req AskRequest, session *domain.ChatSession, routed *RouteResult, functionResults []domain.FunctionResult) error {
	messages := []domain.ChatMessage{
		{
			SessionID: session.ID,
			UserID:    req.UserID,
			Role:      domain.RoleUser,
			Content:   req.Prompt,
		},
		{
			SessionID:     session.ID,
			UserID:        req.UserID,
			Role:          domain.RoleAssistant,
			Content:       routed.Response.Content,
			Model:         routed.Model,
			Cost:          routed.EstimatedCost,
			FunctionCalls: functionResults,
		},
	}
	if err := a.sessions.InsertMessages(ctx, messages); err != nil {
		return err
	}

	slog.Debug("conversation saved",
		"session_id", session.ID,
		"user_id", req.UserID,
		"model", routed.Model,
	)
	return nil
}

func sessionTitle(prompt string) string {
	const maxLen = 60
	if utf8.RuneCountInString(prompt) <= maxLen {
		return prompt
	}
	runes := []rune(prompt)
	return string(runes[:maxLen])
}
