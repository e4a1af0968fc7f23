package domain

import "errors"

var (
	ErrModelNotFound   = errors.New("model not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyPrompt     = errors.New("prompt must not be empty")
	ErrMissingUserID   = errors.New("user id is required")
)
