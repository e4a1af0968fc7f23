package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreevorobei/compass-app/internal/domain"
)

type SkillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepo(db *pgxpool.Pool) *SkillRepo {
	return &SkillRepo{db: db}
}

// Upsert inserts a skill keyed by (user, name). An existing row keeps its
// proficiency and core flag; racing requests converge instead of erroring.
func (r *SkillRepo) Upsert(ctx context.Context, skill domain.Skill) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO skills (user_id, name, category, proficiency_level, is_core_skill)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, name) DO UPDATE SET updated_at = now()`,
		skill.UserID, skill.Name, skill.Category, skill.ProficiencyLevel, skill.IsCoreSkill)
	if err != nil {
		return fmt.Errorf("upsert skill: %w", err)
	}
	return nil
}

func (r *SkillRepo) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Skill, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, category, proficiency_level, is_core_skill, created_at, updated_at
		FROM skills WHERE user_id = $1 AND name = $2`, userID, name)

	var s domain.Skill
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.ProficiencyLevel, &s.IsCoreSkill, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &s, nil
}

func (r *SkillRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, category, proficiency_level, is_core_skill, created_at, updated_at
		FROM skills WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.ProficiencyLevel, &s.IsCoreSkill, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *SkillRepo) UpdateProficiency(ctx context.Context, skillID int64, level int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE skills SET proficiency_level = $2, updated_at = now() WHERE id = $1`,
		skillID, level)
	if err != nil {
		return fmt.Errorf("update proficiency: %w", err)
	}
	return nil
}

func (r *SkillRepo) InsertProgress(ctx context.Context, entry domain.ProgressEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO progress_tracking (user_id, skill_id, metric_name, metric_value, notes)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.UserID, entry.SkillID, entry.MetricName, entry.MetricValue, entry.Notes)
	if err != nil {
		return fmt.Errorf("insert progress: %w", err)
	}
	return nil
}
