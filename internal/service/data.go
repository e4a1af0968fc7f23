package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/andreevorobei/compass-app/internal/cache"
	"github.com/andreevorobei/compass-app/internal/config"
	"github.com/andreevorobei/compass-app/internal/domain"
)

type ProfileReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type SkillReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)
}

type GoalReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error)
}

// DataService serves profile, skill and goal snapshots with read-through
// caching. Entries live under the LONG tier and are invalidated by the
// executor when a function call mutates the underlying rows.
type DataService struct {
	profiles ProfileReader
	skills   SkillReader
	goals    GoalReader
	cache    *cache.Cache
}

func NewDataService(profiles ProfileReader, skills SkillReader, goals GoalReader, c *cache.Cache) *DataService {
	return &DataService{profiles: profiles, skills: skills, goals: goals, cache: c}
}

func (s *DataService) Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	key := cache.UserKey(cache.PrefixProfile, userID.String())

	var cached domain.Profile
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, profile, config.CacheTTLLong)
	return profile, nil
}

func (s *DataService) Skills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	key := cache.UserKey(cache.PrefixSkills, userID.String())

	var cached []domain.Skill
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	skills, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, skills, config.CacheTTLLong)
	return skills, nil
}

func (s *DataService) Goals(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	key := cache.UserKey(cache.PrefixGoals, userID.String())

	var cached []domain.Goal
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	goals, err := s.goals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, goals, config.CacheTTLLong)
	return goals, nil
}
