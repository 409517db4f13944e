package listing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// idFilter maps one list parameter to the field it constrains for a kind.
type idFilter struct {
	param string
	vals  func(domain.ListFilter) []string
	field domain.Field
}

// shape lists which filters a kind supports. Filters a kind does not carry
// are ignored.
type shape struct {
	search        []domain.Field
	priority      domain.Field
	ids           []idFilter
	usersOrCollab bool
	weights       bool
	status        bool
	archived      bool
	period        bool
	notSubtask    bool
}

func users(f domain.ListFilter) []string      { return f.Users }
func teams(f domain.ListFilter) []string      { return f.Teams }
func goals(f domain.ListFilter) []string      { return f.Goals }
func objectives(f domain.ListFilter) []string { return f.Objectives }
func tasks(f domain.ListFilter) []string      { return f.Tasks }
func categories(f domain.ListFilter) []string { return f.Categories }

var shapes = map[domain.EntityKind]shape{
	domain.KindTask: {
		search:   []domain.Field{domain.FieldCode, domain.FieldTitle},
		priority: domain.FieldPriority,
		ids: []idFilter{
			{"teams", teams, domain.FieldTeamID},
			{"goals", goals, domain.FieldGoalID},
			{"objectives", objectives, domain.FieldObjectiveID},
			{"tasks", tasks, domain.FieldID},
		},
		usersOrCollab: true,
		status:        true,
		archived:      true,
		period:        true,
		notSubtask:    true,
	},
	domain.KindGoal: {
		search:   []domain.Field{domain.FieldCode, domain.FieldTitle},
		priority: domain.FieldPriority,
		ids: []idFilter{
			{"users", users, domain.FieldOwnerID},
			{"goals", goals, domain.FieldID},
			{"categories", categories, domain.FieldCategoryID},
		},
		weights:  true,
		status:   true,
		archived: true,
		period:   true,
	},
	domain.KindRisk: {
		search:   []domain.Field{domain.FieldCode, domain.FieldTitle},
		priority: domain.FieldCriticality,
		ids: []idFilter{
			{"users", users, domain.FieldOwnerID},
			{"goals", goals, domain.FieldGoalID},
			{"objectives", objectives, domain.FieldObjectiveID},
			{"tasks", tasks, domain.FieldTaskID},
			{"categories", categories, domain.FieldCategoryID},
		},
		status: true,
	},
	domain.KindChallenge: {
		search:   []domain.Field{domain.FieldCode, domain.FieldTitle},
		priority: domain.FieldPriority,
		ids: []idFilter{
			{"users", users, domain.FieldOwnerID},
			{"goals", goals, domain.FieldGoalID},
			{"objectives", objectives, domain.FieldObjectiveID},
			{"tasks", tasks, domain.FieldTaskID},
			{"categories", categories, domain.FieldCategoryID},
		},
		status: true,
	},
	domain.KindPeriod: {
		search: []domain.Field{domain.FieldTitle},
	},
}

// BuildPredicate translates a normalized filter into a storage-neutral
// predicate for kind. The tenant clause is always the first clause.
//
// For PeriodCurrent the caller resolves the running period into f.PeriodID
// beforehand; an empty PeriodID then means no period is current and the
// predicate keeps unassigned records.
func BuildPredicate(kind domain.EntityKind, tenant string, f domain.ListFilter) (domain.Predicate, error) {
	if tenant == "" {
		return domain.Predicate{}, fmt.Errorf("build predicate: empty tenant: %w", domain.ErrUnauthorized)
	}
	sh, ok := shapes[kind]
	if !ok {
		return domain.Predicate{}, fmt.Errorf("build predicate: unsupported kind %q", kind)
	}

	var p domain.Predicate
	p.And(domain.Eq(domain.FieldCompanyDomain, tenant))

	if f.Search != nil && len(sh.search) > 0 {
		alts := make([]domain.Clause, 0, len(sh.search))
		for _, fld := range sh.search {
			alts = append(alts, domain.Contains(fld, *f.Search))
		}
		if len(alts) == 1 {
			p.And(alts[0])
		} else {
			p.And(domain.Or(alts...))
		}
	}

	if f.Priority != nil && sh.priority != "" {
		p.And(domain.Contains(sh.priority, *f.Priority))
	}

	if sh.usersOrCollab && len(f.Users) > 0 {
		ids, err := parseIDs("users", f.Users)
		if err != nil {
			return domain.Predicate{}, err
		}
		p.And(domain.Or(
			domain.In(domain.FieldOwnerID, ids),
			domain.Overlaps(domain.FieldCollaborators, ids),
		))
	}

	for _, idf := range sh.ids {
		vals := idf.vals(f)
		if len(vals) == 0 {
			continue
		}
		ids, err := parseIDs(idf.param, vals)
		if err != nil {
			return domain.Predicate{}, err
		}
		p.And(domain.In(idf.field, ids))
	}

	if sh.weights && len(f.Weights) > 0 {
		p.And(domain.In(domain.FieldWeight, f.Weights))
	}

	if sh.status && len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = s.String()
		}
		p.And(domain.In(domain.FieldStatus, statuses))
	}

	if f.StartDate != nil {
		p.And(domain.Gte(domain.FieldStartDate, *f.StartDate))
	}
	switch {
	case f.Due != nil:
		p.And(
			domain.Gte(domain.FieldEndDate, f.Due.Start),
			domain.Lte(domain.FieldEndDate, f.Due.End),
		)
	case f.EndDate != nil:
		p.And(domain.Lte(domain.FieldEndDate, *f.EndDate))
	}

	if sh.archived {
		p.And(domain.Eq(domain.FieldArchived, f.Archived))
	}
	if sh.notSubtask {
		p.And(domain.Eq(domain.FieldIsSubtask, false))
	}

	if sh.period {
		clause, ok, err := periodClause(f)
		if err != nil {
			return domain.Predicate{}, err
		}
		if ok {
			p.And(clause)
		}
	}

	return p, nil
}

func periodClause(f domain.ListFilter) (domain.Clause, bool, error) {
	switch f.PeriodMode {
	case domain.PeriodAny:
		return domain.Clause{}, false, nil
	case domain.PeriodExplicit, domain.PeriodCurrent:
		if f.PeriodMode == domain.PeriodCurrent && f.PeriodID == "" {
			return domain.IsNull(domain.FieldPeriodID), true, nil
		}
		id, err := uuid.Parse(f.PeriodID)
		if err != nil {
			return domain.Clause{}, false, &domain.IDError{Field: "period", Value: f.PeriodID}
		}
		return domain.Eq(domain.FieldPeriodID, id), true, nil
	default:
		return domain.IsNull(domain.FieldPeriodID), true, nil
	}
}

func parseIDs(param string, vals []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(vals))
	for _, v := range vals {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, &domain.IDError{Field: param, Value: v}
		}
		ids = append(ids, id)
	}
	return ids, nil
}
