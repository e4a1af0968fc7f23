// Package catalog holds the static registry of available AI models.
//
// The catalog is defined at process start and immutable for the process
// lifetime. Pricing and capabilities mirror the OpenRouter listings for the
// career-coaching model set.
package catalog

import "github.com/andreevorobei/compass-app/internal/domain"

// Well-known model IDs used by the routing table.
const (
	DeepSeekV3  = "deepseek/deepseek-v3"
	GeminiFlash = "google/gemini-2.0-flash-exp:free"
	DeepSeekR1  = "deepseek/deepseek-r1-32k"
	GPT4oMini   = "openai/gpt-4o-mini"
)

var models = []domain.AIModel{
	{
		ID:           DeepSeekV3,
		Name:         "DeepSeek V3",
		CostPer1K:    0.0002,
		Capabilities: []domain.UseCase{domain.UseCaseChat, domain.UseCaseFunctionCalling},
		MaxTokens:    32000,
		UseCase:      domain.UseCaseChat,
	},
	{
		ID:           GeminiFlash,
		Name:         "Gemini 2.0 Flash",
		CostPer1K:    0,
		Capabilities: []domain.UseCase{domain.UseCaseChat, domain.UseCaseAnalysis, domain.UseCaseFunctionCalling},
		MaxTokens:    32000,
		UseCase:      domain.UseCaseAnalysis,
	},
	{
		ID:           DeepSeekR1,
		Name:         "DeepSeek R1",
		CostPer1K:    0.0008,
		Capabilities: []domain.UseCase{domain.UseCaseReasoning, domain.UseCaseAnalysis, domain.UseCaseFunctionCalling},
		MaxTokens:    32000,
		UseCase:      domain.UseCaseReasoning,
	},
	{
		ID:           GPT4oMini,
		Name:         "GPT-4o Mini",
		CostPer1K:    0.0003,
		Capabilities: []domain.UseCase{domain.UseCaseChat, domain.UseCaseFunctionCalling, domain.UseCaseAnalysis},
		MaxTokens:    16000,
		UseCase:      domain.UseCaseFunctionCalling,
	},
}

// ByID returns the model with the given ID, or nil when absent. Callers must
// check for nil before using cost or token fields.
func ByID(id string) *domain.AIModel {
	for i := range models {
		if models[i].ID == id {
			return &models[i]
		}
	}
	return nil
}

// ByUseCase returns models whose recommended use case matches, in declaration
// order.
func ByUseCase(uc domain.UseCase) []domain.AIModel {
	var out []domain.AIModel
	for _, m := range models {
		if m.UseCase == uc {
			out = append(out, m)
		}
	}
	return out
}

// All returns the full catalog in declaration order.
func All() []domain.AIModel {
	out := make([]domain.AIModel, len(models))
	copy(out, models)
	return out
}
