package service

import (
	"strings"

	"github.com/andreevorobei/compass-app/internal/domain"
)

// Keyword sets for complexity classification. Reasoning keywords are checked
// first: a prompt matching both sets classifies as reasoning.
var (
	reasoningKeywords = []string{"why", "how", "analyze", "compare", "strategy"}
	complexKeywords   = []string{"career path", "transition", "skills gap", "market"}
)

// Classify buckets a prompt by case-insensitive substring matching. It is a
// heuristic: the contract is determinism, not semantic accuracy.
func Classify(prompt string) domain.Complexity {
	p := strings.ToLower(prompt)

	for _, kw := range reasoningKeywords {
		if strings.Contains(p, kw) {
			return domain.ComplexityReasoning
		}
	}
	for _, kw := range complexKeywords {
		if strings.Contains(p, kw) {
			return domain.ComplexityComplex
		}
	}
	return domain.ComplexitySimple
}
