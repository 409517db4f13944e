package domain

import "github.com/google/uuid"

// Period is a named planning window (a sprint, a quarter).
type Period struct {
	ID            uuid.UUID
	CompanyDomain string
	Name          string
	StartDate     int64
	EndDate       int64
	Completed     bool
	CreatedAt     int64
}

// IsCurrent reports whether the period is open and contains nowMillis.
func (p Period) IsCurrent(nowMillis int64) bool {
	return !p.Completed && p.StartDate <= nowMillis && nowMillis <= p.EndDate
}

// PeriodCompletion reports what CompletePeriod changed.
type PeriodCompletion struct {
	PeriodID uuid.UUID
	Unlinked int
	Archived int
}
