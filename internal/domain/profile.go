package domain

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID          uuid.UUID
	FullName        string
	ExperienceYears *int
	Interests       []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Skill struct {
	ID               int64
	UserID           uuid.UUID
	Name             string
	Category         string
	ProficiencyLevel int
	IsCoreSkill      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ProgressEntry struct {
	ID          int64
	UserID      uuid.UUID
	SkillID     int64
	MetricName  string
	MetricValue float64
	Notes       string
	CreatedAt   time.Time
}
