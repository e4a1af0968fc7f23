package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreevorobei/compass-app/internal/domain"
)

type fakeProfileStore struct {
	experience *int
	interests  []string
	updates    int
}

func (s *fakeProfileStore) UpdateFields(_ context.Context, _ uuid.UUID, experienceYears *int, interests []string) error {
	if experienceYears == nil && interests == nil {
		return nil
	}
	s.experience = experienceYears
	s.interests = interests
	s.updates++
	return nil
}

type fakeSkillStore struct {
	skills   map[string]*domain.Skill
	progress []domain.ProgressEntry
	nextID   int64
}

func newFakeSkillStore() *fakeSkillStore {
	return &fakeSkillStore{skills: make(map[string]*domain.Skill)}
}

func (s *fakeSkillStore) Upsert(_ context.Context, skill domain.Skill) error {
	if _, ok := s.skills[skill.Name]; ok {
		return nil
	}
	s.nextID++
	skill.ID = s.nextID
	s.skills[skill.Name] = &skill
	return nil
}

func (s *fakeSkillStore) GetByName(_ context.Context, _ uuid.UUID, name string) (*domain.Skill, error) {
	skill, ok := s.skills[name]
	if !ok {
		return nil, domain.ErrSkillNotFound
	}
	return skill, nil
}

func (s *fakeSkillStore) UpdateProficiency(_ context.Context, skillID int64, level int) error {
	for _, skill := range s.skills {
		if skill.ID == skillID {
			skill.ProficiencyLevel = level
		}
	}
	return nil
}

func (s *fakeSkillStore) InsertProgress(_ context.Context, entry domain.ProgressEntry) error {
	s.progress = append(s.progress, entry)
	return nil
}

type fakeGoalStore struct {
	goals []domain.Goal
}

func (s *fakeGoalStore) InsertBatch(_ context.Context, goals []domain.Goal) error {
	s.goals = append(s.goals, goals...)
	return nil
}

func newTestExecutor() (*Executor, *fakeProfileStore, *fakeSkillStore, *fakeGoalStore) {
	profiles := &fakeProfileStore{}
	skills := newFakeSkillStore()
	goals := &fakeGoalStore{}
	return NewExecutor(profiles, skills, goals, nil), profiles, skills, goals
}

func call(name string, args string) domain.FunctionCall {
	return domain.FunctionCall{Name: name, Arguments: json.RawMessage(args)}
}

func TestUpdateUserProfile(t *testing.T) {
	exec, profiles, skills, _ := newTestExecutor()
	userID := uuid.New()

	results := exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncUpdateUserProfile, `{"skills": ["Go", "SQL"], "experience": 5, "interests": ["backend"]}`),
	}, userID)

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)

	require.Len(t, skills.skills, 2)
	goSkill := skills.skills["Go"]
	require.NotNil(t, goSkill)
	assert.Equal(t, "AI-Identified", goSkill.Category)
	assert.Equal(t, 1, goSkill.ProficiencyLevel)
	assert.False(t, goSkill.IsCoreSkill)

	require.NotNil(t, profiles.experience)
	assert.Equal(t, 5, *profiles.experience)
	assert.Equal(t, []string{"backend"}, profiles.interests)
}

func TestUpdateUserProfileNoFields(t *testing.T) {
	exec, profiles, skills, _ := newTestExecutor()

	results := exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncUpdateUserProfile, `{}`),
	}, uuid.New())

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
	assert.Empty(t, skills.skills)
	assert.Zero(t, profiles.updates)
}

func TestSetCareerGoalsDefaults(t *testing.T) {
	exec, _, _, goals := newTestExecutor()
	userID := uuid.New()

	results := exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncSetCareerGoals, `{"shortTerm": ["Get promoted"], "longTerm": []}`),
	}, userID)

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)

	require.Len(t, goals.goals, 1)
	g := goals.goals[0]
	assert.Equal(t, "Get promoted", g.Title)
	assert.Equal(t, domain.GoalShortTerm, g.Category)
	assert.Equal(t, "medium", g.Priority)
	assert.Equal(t, "not_started", g.Status)
	assert.Equal(t, 0, g.ProgressPercentage)

	res, ok := results[0].Result.(goalsResult)
	require.True(t, ok)
	assert.Equal(t, 1, res.GoalsCreated)
}

func TestSetCareerGoalsEmpty(t *testing.T) {
	exec, _, _, goals := newTestExecutor()

	results := exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncSetCareerGoals, `{"shortTerm": [], "longTerm": []}`),
	}, uuid.New())

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
	assert.Empty(t, goals.goals)
}

func TestTrackProgress(t *testing.T) {
	exec, _, skills, _ := newTestExecutor()
	userID := uuid.New()

	// Seed the skill through the sanctioned path.
	exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncUpdateUserProfile, `{"skills": ["Go"]}`),
	}, userID)

	results := exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncTrackProgress, `{"skillName": "Go", "progressPercentage": 55, "notes": "weekly check"}`),
	}, userID)

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)

	// ceil(55/10) = 6 on the 1-10 proficiency scale.
	assert.Equal(t, 6, skills.skills["Go"].ProficiencyLevel)
	require.Len(t, skills.progress, 1)
	assert.Equal(t, "proficiency_level", skills.progress[0].MetricName)
	assert.Equal(t, 55.0, skills.progress[0].MetricValue)
	assert.Equal(t, "weekly check", skills.progress[0].Notes)
}

func TestTrackProgressUnknownSkillIsNoOp(t *testing.T) {
	exec, _, skills, _ := newTestExecutor()

	results := exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncTrackProgress, `{"skillName": "Juggling", "progressPercentage": 80}`),
	}, uuid.New())

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
	assert.Empty(t, skills.progress)

	res, ok := results[0].Result.(progressResult)
	require.True(t, ok)
	assert.Equal(t, "Juggling", res.Skill)
}

// A failing call is captured in its own slot; siblings still execute.
func TestApplyBatchPartialFailure(t *testing.T) {
	exec, _, _, goals := newTestExecutor()
	userID := uuid.New()

	results := exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncUpdateUserProfile, `{"skills": ["Go"]}`),
		call("deleteEverything", `{}`),
		call(domain.FuncSetCareerGoals, `{"shortTerm": ["Ship it"]}`),
	}, userID)

	require.Len(t, results, 3)
	assert.Empty(t, results[0].Error)
	assert.NotNil(t, results[0].Result)
	assert.Equal(t, "Unknown function: deleteEverything", results[1].Error)
	assert.Nil(t, results[1].Result)
	assert.Empty(t, results[2].Error)
	assert.NotNil(t, results[2].Result)

	require.Len(t, goals.goals, 1)
}

func TestApplyMalformedArguments(t *testing.T) {
	exec, _, _, _ := newTestExecutor()

	results := exec.Apply(context.Background(), []domain.FunctionCall{
		call(domain.FuncTrackProgress, `{"skillName": 42}`),
	}, uuid.New())

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Error, "decode arguments")
}
