package domain

// TaskStatus is the workflow state shared by tasks, goals, objectives,
// risks and challenges.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "Not started"
	StatusInProgress TaskStatus = "In progress"
	StatusInReview   TaskStatus = "In review"
	StatusCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusInReview, StatusCompleted:
		return true
	}
	return false
}

// StatusSlots is the positional order of the boolean status filter sent by
// clients: index 0 is Completed, index 3 is Not started.
var StatusSlots = [4]TaskStatus{
	StatusCompleted,
	StatusInReview,
	StatusInProgress,
	StatusNotStarted,
}

// EntityKind identifies a listable collection.
type EntityKind string

const (
	KindTask      EntityKind = "tasks"
	KindGoal      EntityKind = "goals"
	KindObjective EntityKind = "objectives"
	KindRisk      EntityKind = "risks"
	KindChallenge EntityKind = "challenges"
	KindPeriod    EntityKind = "periods"
)

func (k EntityKind) String() string { return string(k) }

// CodePrefix returns the prefix used for human-readable codes of this kind.
func (k EntityKind) CodePrefix() string {
	switch k {
	case KindTask:
		return "TS"
	case KindGoal:
		return "GL"
	case KindObjective:
		return "OB"
	case KindRisk:
		return "RK"
	case KindChallenge:
		return "CH"
	default:
		return "PR"
	}
}

// DueBucket is a named relative date window.
type DueBucket string

const (
	DueToday     DueBucket = "Due today"
	DueThisWeek  DueBucket = "Due this week"
	DueThisMonth DueBucket = "Due this month"
)

func (d DueBucket) IsValid() bool {
	switch d {
	case DueToday, DueThisWeek, DueThisMonth:
		return true
	}
	return false
}

// PeriodMode selects which period a list is restricted to.
type PeriodMode int

const (
	// PeriodUnassigned keeps records with no period (the backlog).
	PeriodUnassigned PeriodMode = iota
	// PeriodExplicit keeps records of ListFilter.PeriodID.
	PeriodExplicit
	// PeriodCurrent keeps records of the tenant's running period.
	PeriodCurrent
	// PeriodAny applies no period constraint (archived view).
	PeriodAny
)
