package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreevorobei/compass-app/internal/domain"
)

// GenerationRequest is one call against the generation backend.
type GenerationRequest struct {
	Model  string
	Prompt string
	Schema json.RawMessage // optional structured-output schema
}

type GenerationResponse struct {
	Content       string
	TokensUsed    int
	FunctionCalls []domain.FunctionCall
}

// Generator abstracts the generation backend (OpenRouter in production).
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResponse, error)
}

// GenerationError wraps a failed or malformed generation call. It is
// caller-visible and never auto-retried.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for model %s: %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
