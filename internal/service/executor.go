package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/andreevorobei/compass-app/internal/cache"
	"github.com/andreevorobei/compass-app/internal/config"
	"github.com/andreevorobei/compass-app/internal/domain"
)

// Store interfaces the executor mutates through. Satisfied by the pgx
// repositories; tests substitute in-memory fakes.
type ProfileStore interface {
	UpdateFields(ctx context.Context, userID uuid.UUID, experienceYears *int, interests []string) error
}

type SkillStore interface {
	Upsert(ctx context.Context, skill domain.Skill) error
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Skill, error)
	UpdateProficiency(ctx context.Context, skillID int64, level int) error
	InsertProgress(ctx context.Context, entry domain.ProgressEntry) error
}

type GoalStore interface {
	InsertBatch(ctx context.Context, goals []domain.Goal) error
}

// Executor applies model-emitted function calls against the user-data store.
// It owns no state of its own; persistence belongs to the stores.
type Executor struct {
	profiles ProfileStore
	skills   SkillStore
	goals    GoalStore
	cache    *cache.Cache
}

func NewExecutor(profiles ProfileStore, skills SkillStore, goals GoalStore, c *cache.Cache) *Executor {
	return &Executor{profiles: profiles, skills: skills, goals: goals, cache: c}
}

// Apply runs each call independently: a failure is captured in that call's
// result slot and the rest of the batch still executes. The batch is
// best-effort, not transactional.
func (e *Executor) Apply(ctx context.Context, calls []domain.FunctionCall, userID uuid.UUID) []domain.FunctionResult {
	results := make([]domain.FunctionResult, 0, len(calls))

	for _, call := range calls {
		res := domain.FunctionResult{
			Function:  call.Name,
			Arguments: call.Arguments,
		}

		var (
			out any
			err error
		)
		switch call.Name {
		case domain.FuncUpdateUserProfile:
			out, err = e.updateUserProfile(ctx, call.Arguments, userID)
		case domain.FuncSetCareerGoals:
			out, err = e.setCareerGoals(ctx, call.Arguments, userID)
		case domain.FuncTrackProgress:
			out, err = e.trackProgress(ctx, call.Arguments, userID)
		default:
			err = fmt.Errorf("Unknown function: %s", call.Name)
		}

		if err != nil {
			res.Error = err.Error()
		} else {
			res.Result = out
		}
		results = append(results, res)
	}

	return results
}

type profileUpdateResult struct {
	Message string                   `json:"message"`
	Updated domain.ProfileUpdateArgs `json:"updated"`
}

func (e *Executor) updateUserProfile(ctx context.Context, raw json.RawMessage, userID uuid.UUID) (any, error) {
	var args domain.ProfileUpdateArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	for _, name := range args.Skills {
		skill := domain.Skill{
			UserID:           userID,
			Name:             name,
			Category:         config.DefaultSkillCategory,
			ProficiencyLevel: config.DefaultProficiencyLevel,
			IsCoreSkill:      false,
		}
		if err := e.skills.Upsert(ctx, skill); err != nil {
			return nil, err
		}
	}

	if err := e.profiles.UpdateFields(ctx, userID, args.Experience, args.Interests); err != nil {
		return nil, err
	}

	e.invalidate(ctx, userID, cache.PrefixProfile, cache.PrefixSkills)

	return profileUpdateResult{
		Message: "Profile updated successfully",
		Updated: args,
	}, nil
}

type goalsResult struct {
	Message      string `json:"message"`
	GoalsCreated int    `json:"goalsCreated"`
}

func (e *Executor) setCareerGoals(ctx context.Context, raw json.RawMessage, userID uuid.UUID) (any, error) {
	var args domain.CareerGoalsArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	priority := args.Priority
	if priority == "" {
		priority = config.DefaultGoalPriority
	}

	var goals []domain.Goal
	for _, title := range args.ShortTerm {
		goals = append(goals, newGoal(userID, title, domain.GoalShortTerm, priority))
	}
	for _, title := range args.LongTerm {
		goals = append(goals, newGoal(userID, title, domain.GoalLongTerm, priority))
	}

	if err := e.goals.InsertBatch(ctx, goals); err != nil {
		return nil, err
	}

	if len(goals) > 0 {
		e.invalidate(ctx, userID, cache.PrefixGoals)
	}

	return goalsResult{
		Message:      "Goals created successfully",
		GoalsCreated: len(goals),
	}, nil
}

func newGoal(userID uuid.UUID, title string, category domain.GoalCategory, priority string) domain.Goal {
	return domain.Goal{
		UserID:             userID,
		Title:              title,
		Category:           category,
		Priority:           priority,
		Status:             config.DefaultGoalStatus,
		ProgressPercentage: 0,
	}
}

type progressResult struct {
	Message  string  `json:"message"`
	Skill    string  `json:"skill"`
	Progress float64 `json:"progress"`
}

func (e *Executor) trackProgress(ctx context.Context, raw json.RawMessage, userID uuid.UUID) (any, error) {
	var args domain.TrackProgressArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	skill, err := e.skills.GetByName(ctx, userID, args.SkillName)
	if err == nil {
		level := int(math.Ceil(args.ProgressPercentage / config.ProficiencyScale))
		if err := e.skills.UpdateProficiency(ctx, skill.ID, level); err != nil {
			return nil, err
		}
		entry := domain.ProgressEntry{
			UserID:      userID,
			SkillID:     skill.ID,
			MetricName:  "proficiency_level",
			MetricValue: args.ProgressPercentage,
			Notes:       args.Notes,
		}
		if err := e.skills.InsertProgress(ctx, entry); err != nil {
			return nil, err
		}
		e.invalidate(ctx, userID, cache.PrefixSkills)
	} else if !errors.Is(err, domain.ErrSkillNotFound) {
		return nil, err
	}
	// Unknown skill is a silent no-op: skills are only created through
	// updateUserProfile.

	return progressResult{
		Message:  "Progress tracked successfully",
		Skill:    args.SkillName,
		Progress: args.ProgressPercentage,
	}, nil
}

func (e *Executor) invalidate(ctx context.Context, userID uuid.UUID, prefixes ...string) {
	if e.cache == nil {
		return
	}
	for _, prefix := range prefixes {
		e.cache.Delete(ctx, cache.UserKey(prefix, userID.String()))
	}
}
