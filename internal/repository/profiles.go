package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreevorobei/compass-app/internal/domain"
)

type ProfileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT user_id, full_name, experience_years, interests, created_at, updated_at
		FROM profiles WHERE user_id = $1`, userID)

	var p domain.Profile
	err := row.Scan(&p.UserID, &p.FullName, &p.ExperienceYears, &p.Interests, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// UpdateFields patches experience and interests, leaving absent fields
// untouched. A call with neither field set is a no-op.
func (r *ProfileRepo) UpdateFields(ctx context.Context, userID uuid.UUID, experienceYears *int, interests []string) error {
	if experienceYears == nil && interests == nil {
		return nil
	}

	query := `UPDATE profiles SET updated_at = now()`
	args := []any{userID}
	if experienceYears != nil {
		args = append(args, *experienceYears)
		query += fmt.Sprintf(", experience_years = $%d", len(args))
	}
	if interests != nil {
		args = append(args, interests)
		query += fmt.Sprintf(", interests = $%d", len(args))
	}
	query += ` WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
