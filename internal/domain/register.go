package domain

import "github.com/google/uuid"

// Risk is a tracked threat to a goal, objective or task.
type Risk struct {
	ID            uuid.UUID
	CompanyDomain string
	Code          string
	Title         string
	Status        TaskStatus
	Criticality   string
	OwnerID       uuid.UUID
	GoalID        *uuid.UUID
	ObjectiveID   *uuid.UUID
	TaskID        *uuid.UUID
	CategoryID    *uuid.UUID
	StartDate     *int64
	EndDate       *int64
	CreatedAt     int64
}

// Challenge is a tracked obstacle. Same shape as Risk with a priority
// instead of a criticality.
type Challenge struct {
	ID            uuid.UUID
	CompanyDomain string
	Code          string
	Title         string
	Status        TaskStatus
	Priority      string
	OwnerID       uuid.UUID
	GoalID        *uuid.UUID
	ObjectiveID   *uuid.UUID
	TaskID        *uuid.UUID
	CategoryID    *uuid.UUID
	StartDate     *int64
	EndDate       *int64
	CreatedAt     int64
}
