package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreevorobei/compass-app/internal/domain"
)

type GoalRepo struct {
	db *pgxpool.Pool
}

func NewGoalRepo(db *pgxpool.Pool) *GoalRepo {
	return &GoalRepo{db: db}
}

// InsertBatch bulk-inserts goals in one round trip. Zero goals is a no-op.
func (r *GoalRepo) InsertBatch(ctx context.Context, goals []domain.Goal) error {
	if len(goals) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, g := range goals {
		batch.Queue(`
			INSERT INTO goals (user_id, title, category, priority, status, progress_percentage)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			g.UserID, g.Title, g.Category, g.Priority, g.Status, g.ProgressPercentage)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range goals {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert goals: %w", err)
		}
	}
	return nil
}

func (r *GoalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, category, priority, status, progress_percentage, created_at, updated_at
		FROM goals WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Category, &g.Priority, &g.Status, &g.ProgressPercentage, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
