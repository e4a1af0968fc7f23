package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreevorobei/compass-app/internal/catalog"
)

type fakeGenerator struct {
	calls []GenerationRequest
	resp  *GenerationResponse
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, req GenerationRequest) (*GenerationResponse, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	if g.resp != nil {
		return g.resp, nil
	}
	return &GenerationResponse{Content: "ok", TokensUsed: 10}, nil
}

func floatPtr(v float64) *float64 { return &v }

func TestRouteModelSelection(t *testing.T) {
	tests := []struct {
		name      string
		prompt    string
		opts      RouteOptions
		wantModel string
	}{
		{
			name:      "simple prompt routes to cheapest general model",
			prompt:    "hi",
			wantModel: catalog.DeepSeekV3,
		},
		{
			name:      "complex prompt routes to free tier",
			prompt:    "tell me about the current job market",
			wantModel: catalog.GeminiFlash,
		},
		{
			name:      "reasoning prompt routes to reasoning tier",
			prompt:    "compare these two offers",
			wantModel: catalog.DeepSeekR1,
		},
		{
			name:      "tiny cost ceiling overrides reasoning complexity",
			prompt:    "analyze my career strategy in depth",
			opts:      RouteOptions{MaxCost: floatPtr(0.00001)},
			wantModel: catalog.DeepSeekV3,
		},
		{
			name:      "ceiling at threshold does not override",
			prompt:    "analyze my career strategy in depth",
			opts:      RouteOptions{MaxCost: floatPtr(0.001)},
			wantModel: catalog.DeepSeekR1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			r := NewRouter(gen)

			res, err := r.Route(context.Background(), tt.prompt, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, res.Model)
			require.Len(t, gen.calls, 1)
			assert.Equal(t, tt.wantModel, gen.calls[0].Model)
		})
	}
}

func TestRouteEstimatedCost(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewRouter(gen)

	// "hi" -> simple -> DeepSeek V3: ceil(2/4)=1 token.
	res, err := r.Route(context.Background(), "hi", RouteOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/1000*0.0002, res.EstimatedCost, 1e-12)

	// Cost scales linearly with prompt length for a fixed model.
	short, err := r.Route(context.Background(), strings.Repeat("a", 400), RouteOptions{})
	require.NoError(t, err)
	long, err := r.Route(context.Background(), strings.Repeat("a", 800), RouteOptions{})
	require.NoError(t, err)
	assert.Equal(t, short.Model, long.Model)
	assert.InDelta(t, 2*short.EstimatedCost, long.EstimatedCost, 1e-12)
	assert.GreaterOrEqual(t, short.EstimatedCost, 0.0)
}

func TestCostSummaryAccumulates(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewRouter(gen)

	_, err := r.Route(context.Background(), strings.Repeat("x", 4000), RouteOptions{})
	require.NoError(t, err)
	_, err = r.Route(context.Background(), strings.Repeat("x", 4000), RouteOptions{})
	require.NoError(t, err)

	summary := r.CostSummary()
	assert.InDelta(t, 2*(1000.0/1000*0.0002), summary[catalog.DeepSeekV3], 1e-12)

	// The snapshot is detached from the live tally.
	summary[catalog.DeepSeekV3] = 0
	assert.NotZero(t, r.CostSummary()[catalog.DeepSeekV3])
}

func TestRouteGenerationError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	r := NewRouter(gen)

	_, err := r.Route(context.Background(), "hi", RouteOptions{})
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, catalog.DeepSeekV3, genErr.Model)

	// A failed call must not pollute the cost tally.
	assert.Empty(t, r.CostSummary())
}
