package domain

// UseCase is the recommended default use for a model, not an exclusivity
// constraint.
type UseCase string

const (
	UseCaseChat            UseCase = "chat"
	UseCaseAnalysis        UseCase = "analysis"
	UseCaseReasoning       UseCase = "reasoning"
	UseCaseFunctionCalling UseCase = "function-calling"
)

// Complexity is the coarse bucket used to pick a cost-appropriate model.
type Complexity string

const (
	ComplexitySimple    Complexity = "simple"
	ComplexityComplex   Complexity = "complex"
	ComplexityReasoning Complexity = "reasoning"
)

// Context tags a request with the coaching scenario it belongs to.
type Context string

const (
	ContextCareerAdvice    Context = "career-advice"
	ContextSkillAssessment Context = "skill-assessment"
	ContextGoalPlanning    Context = "goal-planning"
)

type AIModel struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CostPer1K    float64   `json:"cost_per_1k"` // USD per 1K tokens, 0 for free tiers
	Capabilities []UseCase `json:"capabilities"`
	MaxTokens    int       `json:"max_tokens"`
	UseCase      UseCase   `json:"use_case"`
}

func (m *AIModel) IsFree() bool {
	return m.CostPer1K == 0
}

func (m *AIModel) HasCapability(c UseCase) bool {
	for _, cap := range m.Capabilities {
		if cap == c {
			return true
		}
	}
	return false
}
