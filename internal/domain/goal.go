package domain

import "github.com/google/uuid"

// Goal is a top-level target for a period. Objectives hang off a goal.
type Goal struct {
	ID            uuid.UUID
	CompanyDomain string
	Code          string
	Title         string
	Status        TaskStatus
	Priority      string
	Weight        string
	CategoryID    *uuid.UUID
	OwnerID       uuid.UUID
	PeriodID      *uuid.UUID
	StartDate     *int64
	EndDate       *int64
	Archived      bool
	CreatedAt     int64

	Objectives []Objective // joined, not stored
}

// Objective is a measurable step towards a goal. Its status and progress are
// recomputed from the tasks linked to it.
type Objective struct {
	ID            uuid.UUID
	CompanyDomain string
	GoalID        uuid.UUID
	Code          string
	Title         string
	Status        TaskStatus
	Progress      int
	OwnerID       uuid.UUID
	CreatedAt     int64
}
