package config

import "time"

const (
	// Cache TTL tiers
	CacheTTLShort     = 5 * time.Minute
	CacheTTLMedium    = 1 * time.Hour
	CacheTTLLong      = 24 * time.Hour
	CacheTTLPermanent = 0 // no expiry

	// Cost ceilings below this force the cheapest model
	MinCostThreshold = 0.001

	// Rough token estimation: characters per token
	CharsPerToken = 4

	// Progress percentage (0-100) maps onto proficiency (1-10)
	ProficiencyScale = 10

	// AI request timeout
	RequestTimeout = 90 * time.Second

	// Server shutdown grace period
	ShutdownTimeout = 10 * time.Second

	// Default skill attributes for AI-identified skills
	DefaultSkillCategory    = "AI-Identified"
	DefaultProficiencyLevel = 1

	// Goal defaults
	DefaultGoalPriority = "medium"
	DefaultGoalStatus   = "not_started"
)
