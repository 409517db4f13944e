package domain

// DeleteOutcome is the per-id result of a bulk delete.
type DeleteOutcome string

const (
	DeleteOutcomeDeleted  DeleteOutcome = "deleted"
	DeleteOutcomeNotFound DeleteOutcome = "not_found"
	DeleteOutcomeInvalid  DeleteOutcome = "invalid"
	DeleteOutcomeError    DeleteOutcome = "error"
)

// DeleteDetail is the outcome for a single requested id.
type DeleteDetail struct {
	ID      string
	Outcome DeleteOutcome
	Err     error
}

// DeleteSummary aggregates a non-atomic bulk delete.
type DeleteSummary struct {
	Deleted  int
	NotFound int
	Errors   int
	Details  []DeleteDetail
}

// Add records one outcome.
func (s *DeleteSummary) Add(d DeleteDetail) {
	switch d.Outcome {
	case DeleteOutcomeDeleted:
		s.Deleted++
	case DeleteOutcomeNotFound:
		s.NotFound++
	default:
		s.Errors++
	}
	s.Details = append(s.Details, d)
}
