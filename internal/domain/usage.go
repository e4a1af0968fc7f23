package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestType string

const (
	RequestTypeChat         RequestType = "chat"
	RequestTypeFunctionCall RequestType = "function_call"
)

// UsageRecord is an append-only accounting row for one AI request.
type UsageRecord struct {
	ID          int64
	UserID      uuid.UUID
	SessionID   *uuid.UUID
	ModelName   string
	TokensUsed  int
	CostUSD     decimal.Decimal
	RequestType RequestType
	CreatedAt   time.Time
}

// ModelUsage aggregates persisted usage for one model.
type ModelUsage struct {
	ModelName  string          `json:"model_name"`
	Requests   int64           `json:"requests"`
	TokensUsed int64           `json:"tokens_used"`
	CostUSD    decimal.Decimal `json:"cost_usd"`
}
