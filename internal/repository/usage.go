package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreevorobei/compass-app/internal/domain"
)

type UsageRepo struct {
	db *pgxpool.Pool
}

func NewUsageRepo(db *pgxpool.Pool) *UsageRepo {
	return &UsageRepo{db: db}
}

func (r *UsageRepo) Insert(ctx context.Context, rec domain.UsageRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO ai_usage (user_id, session_id, model_name, tokens_used, cost_usd, request_type)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.UserID, rec.SessionID, rec.ModelName, rec.TokensUsed, rec.CostUSD, rec.RequestType)
	if err != nil {
		return fmt.Errorf("insert usage: %w", err)
	}
	return nil
}

// SummaryByUser aggregates persisted usage per model for one user.
func (r *UsageRepo) SummaryByUser(ctx context.Context, userID uuid.UUID) ([]domain.ModelUsage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT model_name, COUNT(*), COALESCE(SUM(tokens_used), 0), COALESCE(SUM(cost_usd), 0)
		FROM ai_usage WHERE user_id = $1
		GROUP BY model_name ORDER BY model_name`, userID)
	if err != nil {
		return nil, fmt.Errorf("usage summary: %w", err)
	}
	defer rows.Close()

	var out []domain.ModelUsage
	for rows.Next() {
		var u domain.ModelUsage
		if err := rows.Scan(&u.ModelName, &u.Requests, &u.TokensUsed, &u.CostUSD); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
