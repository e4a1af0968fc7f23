package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/andreevorobei/compass-app/internal/domain"
)

type UsageStore interface {
	Insert(ctx context.Context, rec domain.UsageRecord) error
	SummaryByUser(ctx context.Context, userID uuid.UUID) ([]domain.ModelUsage, error)
}

// UsageTracker appends accounting rows for analytics. Recording is
// diagnostic, not correctness-critical: failures are logged and dropped.
type UsageTracker struct {
	store UsageStore
}

func NewUsageTracker(store UsageStore) *UsageTracker {
	return &UsageTracker{store: store}
}

func (t *UsageTracker) Record(ctx context.Context, rec domain.UsageRecord) {
	if err := t.store.Insert(ctx, rec); err != nil {
		slog.Error("usage record failed",
			"error", err,
			"user_id", rec.UserID,
			"model", rec.ModelName,
		)
	}
}

func (t *UsageTracker) Summary(ctx context.Context, userID uuid.UUID) ([]domain.ModelUsage, error) {
	return t.store.SummaryByUser(ctx, userID)
}
