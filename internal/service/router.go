package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/andreevorobei/compass-app/internal/catalog"
	"github.com/andreevorobei/compass-app/internal/config"
	"github.com/andreevorobei/compass-app/internal/domain"
)

// RouteOptions constrain one routing decision.
type RouteOptions struct {
	// MaxCost is a USD ceiling for the request. Values below the minimum
	// cost threshold force the cheapest model regardless of complexity.
	MaxCost *float64
	Context domain.Context
}

type RouteResult struct {
	Model         string
	Response      *GenerationResponse
	EstimatedCost float64
}

// Router selects a model per request and issues the generation call. It
// keeps an advisory per-model spend tally for the process lifetime; the
// persisted ai_usage rows remain the authoritative record.
type Router struct {
	gen Generator

	mu    sync.Mutex
	costs map[string]float64
}

func NewRouter(gen Generator) *Router {
	return &Router{
		gen:   gen,
		costs: make(map[string]float64),
	}
}

func (r *Router) Route(ctx context.Context, prompt string, opts RouteOptions) (*RouteResult, error) {
	complexity := Classify(prompt)
	modelID := selectModel(complexity, opts)

	model := catalog.ByID(modelID)
	if model == nil {
		// Routing table referencing an uncataloged model is a configuration
		// bug, not a runtime condition.
		return nil, fmt.Errorf("routing table references %q: %w", modelID, domain.ErrModelNotFound)
	}

	resp, err := r.gen.Generate(ctx, GenerationRequest{
		Model:  modelID,
		Prompt: prompt,
		Schema: schemaForContext(opts.Context),
	})
	if err != nil {
		return nil, &GenerationError{Model: modelID, Err: err}
	}

	cost := estimateCost(prompt, model)
	r.trackCost(modelID, cost)

	return &RouteResult{
		Model:         modelID,
		Response:      resp,
		EstimatedCost: cost,
	}, nil
}

// selectModel maps complexity to a model, with the cost ceiling overriding
// complexity routing when it falls below the minimum threshold.
func selectModel(complexity domain.Complexity, opts RouteOptions) string {
	if opts.MaxCost != nil && *opts.MaxCost < config.MinCostThreshold {
		return catalog.DeepSeekV3
	}

	switch complexity {
	case domain.ComplexitySimple:
		return catalog.DeepSeekV3
	case domain.ComplexityComplex:
		return catalog.GeminiFlash
	case domain.ComplexityReasoning:
		return catalog.DeepSeekR1
	default:
		return catalog.GPT4oMini
	}
}

// estimateCost approximates tokens as ceil(len/4). It is an estimate, not a
// billed amount.
func estimateCost(prompt string, model *domain.AIModel) float64 {
	tokens := (len(prompt) + config.CharsPerToken - 1) / config.CharsPerToken
	return float64(tokens) / 1000 * model.CostPer1K
}

func (r *Router) trackCost(modelID string, cost float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.costs[modelID] += cost
}

// CostSummary returns a snapshot of cumulative estimated spend per model.
func (r *Router) CostSummary() map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]float64, len(r.costs))
	for id, cost := range r.costs {
		out[id] = cost
	}
	return out
}

// schemaForContext is the hook point for context-specific structured output.
// Unresolved contexts get no schema, i.e. free-form text.
func schemaForContext(domain.Context) json.RawMessage {
	return nil
}
