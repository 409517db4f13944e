package domain

import (
	"github.com/google/uuid"
)

// Task is a unit of work. Subtasks are tasks with IsSubtask set and ParentID
// pointing at their parent.
type Task struct {
	ID            uuid.UUID
	CompanyDomain string
	Code          string
	Title         string
	Description   *string
	Status        TaskStatus
	Progress      int
	Priority      string
	StartDate     *int64
	EndDate       *int64
	OwnerID       uuid.UUID
	ReporterID    uuid.UUID
	TeamID        *uuid.UUID
	Collaborators []uuid.UUID
	PeriodID      *uuid.UUID
	GoalID        *uuid.UUID
	ObjectiveID   *uuid.UUID
	ParentID      *uuid.UUID
	IsSubtask     bool
	Archived      bool
	CreatedAt     int64

	Subtasks []Task // joined, not stored
}

// TaskUpdateParams is a partial update. Nil fields are left untouched.
type TaskUpdateParams struct {
	Title         *string
	Description   *string
	Status        *TaskStatus
	Progress      *int
	Priority      *string
	StartDate     *int64
	EndDate       *int64
	Collaborators []uuid.UUID
	PeriodID      *uuid.UUID
	ClearPeriod   bool
	ObjectiveID   *uuid.UUID
	Archived      *bool
}

// IsEmpty reports whether the update would change nothing.
func (p TaskUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Progress == nil && p.Priority == nil && p.StartDate == nil &&
		p.EndDate == nil && p.Collaborators == nil && p.PeriodID == nil &&
		!p.ClearPeriod && p.ObjectiveID == nil && p.Archived == nil
}

// DeriveStatus computes an aggregate status from child statuses:
// no children or all not started gives Not started, all completed gives
// Completed, all at least in review gives In review, anything else In progress.
func DeriveStatus(children []TaskStatus) TaskStatus {
	if len(children) == 0 {
		return StatusNotStarted
	}

	var completed, review, notStarted int
	for _, s := range children {
		switch s {
		case StatusCompleted:
			completed++
		case StatusInReview:
			review++
		case StatusNotStarted:
			notStarted++
		}
	}

	switch {
	case completed == len(children):
		return StatusCompleted
	case completed+review == len(children):
		return StatusInReview
	case notStarted == len(children):
		return StatusNotStarted
	default:
		return StatusInProgress
	}
}

// DeriveProgress averages child progress values, rounded to the nearest
// integer and clamped to 0..100.
func DeriveProgress(children []int) int {
	if len(children) == 0 {
		return 0
	}
	sum := 0
	for _, p := range children {
		sum += min(max(p, 0), 100)
	}
	return (sum*2 + len(children)) / (2 * len(children))
}

// StatusProgress is the status/progress pair pushed up to a parent task or
// an objective.
type StatusProgress struct {
	Status   TaskStatus
	Progress int
}

// Derive aggregates child states with DeriveStatus and DeriveProgress.
func Derive(children []StatusProgress) StatusProgress {
	statuses := make([]TaskStatus, len(children))
	progress := make([]int, len(children))
	for i, c := range children {
		statuses[i] = c.Status
		progress[i] = c.Progress
	}
	return StatusProgress{Status: DeriveStatus(statuses), Progress: DeriveProgress(progress)}
}
