package model

import (
	"time"

	"github.com/google/uuid"
)

type Milestone struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	TargetDate  *time.Time
	Completed   bool
	Progress    int // 0..100
	CreatedAt   time.Time
}

// GoalProgress is derived on demand from the current milestone set and is
// never stored.
type GoalProgress struct {
	Percentage          int
	CompletedMilestones int
	TotalMilestones     int
}
