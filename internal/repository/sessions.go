package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/andreevorobei/compass-app/internal/domain"
)

type SessionRepo struct {
	db *pgxpool.Pool
}

func NewSessionRepo(db *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.ChatSession, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO chat_sessions (user_id, title)
		VALUES ($1, $2)
		RETURNING id, user_id, title, created_at, updated_at`, userID, title)

	var s domain.ChatSession
	if err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepo) GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.ChatSession, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, title, created_at, updated_at
		FROM chat_sessions WHERE id = $1`, sessionID)

	var s domain.ChatSession
	err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// InsertMessages stores a user/assistant exchange in one transaction so a
// half-written conversation never becomes visible.
func (r *SessionRepo) InsertMessages(ctx context.Context, messages []domain.ChatMessage) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range messages {
		var calls []byte
		if m.FunctionCalls != nil {
			calls, err = json.Marshal(m.FunctionCalls)
			if err != nil {
				return fmt.Errorf("marshal function calls: %w", err)
			}
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO chat_messages (session_id, user_id, role, content, model, cost, function_calls)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.SessionID, m.UserID, m.Role, m.Content, m.Model, decimal.NewFromFloat(m.Cost), calls)
		if err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit messages: %w", err)
	}
	return nil
}
