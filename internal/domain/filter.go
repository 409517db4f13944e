package domain

import "math"

// ListFilter is the typed form of list query parameters. Pointer and slice
// fields are optional: nil means the clause is not applied.
type ListFilter struct {
	Search   *string
	Priority *string

	StartDate *int64 // inclusive lower bound on startDate, epoch millis
	EndDate   *int64 // inclusive upper bound on endDate, epoch millis
	Due       *DueWindow

	// Raw id strings; parsed by the predicate builder so a malformed id
	// surfaces as an IDError instead of being dropped.
	Users      []string
	Teams      []string
	Goals      []string
	Objectives []string
	Tasks      []string
	Categories []string
	Weights    []string

	Statuses []TaskStatus

	Archived   bool
	PeriodMode PeriodMode
	PeriodID   string

	PageIndex int
}

// DueWindow is a resolved due bucket: an inclusive [Start, End] range in
// epoch millis.
type DueWindow struct {
	Bucket DueBucket
	Start  int64
	End    int64
}

// Page selects a window of an ordered result set.
type Page struct {
	Index int
	Size  int
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt
// instead of overflowing for very large page indexes.
func (p Page) Offset() int {
	if p.Index <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Index > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Index * p.Size
}

// PageResult is one page of records plus the number of records matching the
// predicate without skip/limit.
type PageResult[T any] struct {
	Items         []T
	TotalRowCount int
}
