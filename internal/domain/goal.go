package domain

import (
	"time"

	"github.com/google/uuid"
)

type GoalCategory string

const (
	GoalShortTerm GoalCategory = "short_term"
	GoalLongTerm  GoalCategory = "long_term"
)

type Goal struct {
	ID                 int64
	UserID             uuid.UUID
	Title              string
	Category           GoalCategory
	Priority           string
	Status             string
	ProgressPercentage int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
