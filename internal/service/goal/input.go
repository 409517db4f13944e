package goal

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// CreateGoalInput holds the parameters for creating a goal.
type CreateGoalInput struct {
	Title      string
	Status     domain.TaskStatus
	Priority   string
	Weight     string
	CategoryID *uuid.UUID
	OwnerID    *uuid.UUID
	PeriodID   *uuid.UUID
	StartDate  *int64
	EndDate    *int64
}

// Validate checks all fields and collects all errors.
func (i CreateGoalInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.StartDate != nil && i.EndDate != nil && *i.EndDate < *i.StartDate {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateObjectiveInput holds the parameters for adding an objective to a goal.
type CreateObjectiveInput struct {
	GoalID  uuid.UUID
	Title   string
	OwnerID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateObjectiveInput) Validate() error {
	var errs []domain.FieldError

	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goalId", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
