package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatMessage struct {
	ID            int64
	SessionID     uuid.UUID
	UserID        uuid.UUID
	Role          string
	Content       string
	Model         string
	Cost          float64
	FunctionCalls []FunctionResult
	CreatedAt     time.Time
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
