package task

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
)

// CreateTaskInput holds the parameters for creating a task or a subtask.
type CreateTaskInput struct {
	Title         string
	Description   *string
	Status        domain.TaskStatus // empty = Not started
	Progress      int
	Priority      string
	StartDate     *int64
	EndDate       *int64
	OwnerID       *uuid.UUID // nil = creator
	TeamID        *uuid.UUID
	Collaborators []uuid.UUID
	PeriodID      *uuid.UUID
	GoalID        *uuid.UUID
	ObjectiveID   *uuid.UUID
	ParentID      *uuid.UUID // set for subtasks
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Progress < 0 || i.Progress > 100 {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	if i.StartDate != nil && i.EndDate != nil && *i.EndDate < *i.StartDate {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput is a partial update of one task. When the task is a
// subtask, ParentStatus and ParentProgress are written to its parent;
// either one left nil is derived from the parent's subtasks.
type UpdateTaskInput struct {
	TaskID         uuid.UUID
	Changes        domain.TaskUpdateParams
	ParentStatus   *domain.TaskStatus
	ParentProgress *int
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	c := i.Changes
	if c.Title != nil {
		title := strings.TrimSpace(*c.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if c.Description != nil && len(*c.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if c.Status != nil && !c.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if c.Progress != nil && (*c.Progress < 0 || *c.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	if c.StartDate != nil && c.EndDate != nil && *c.EndDate < *c.StartDate {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}
	if c.ClearPeriod && c.PeriodID != nil {
		errs = append(errs, domain.FieldError{Field: "periodId", Message: "cannot set and clear the period at once"})
	}
	if i.ParentStatus != nil && !i.ParentStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "parentStatus", Message: "unknown status"})
	}
	if i.ParentProgress != nil && (*i.ParentProgress < 0 || *i.ParentProgress > 100) {
		errs = append(errs, domain.FieldError{Field: "parentProgress", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
