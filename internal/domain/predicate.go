package domain

// Field is an engine-neutral record attribute name. Storage adapters map
// fields to their own column names and reject fields they do not know.
type Field string

const (
	FieldID            Field = "id"
	FieldCompanyDomain Field = "companyDomain"
	FieldCode          Field = "code"
	FieldTitle         Field = "title"
	FieldStatus        Field = "status"
	FieldPriority      Field = "priority"
	FieldCriticality   Field = "criticality"
	FieldWeight        Field = "weight"
	FieldStartDate     Field = "startDate"
	FieldEndDate       Field = "endDate"
	FieldOwnerID       Field = "ownerId"
	FieldTeamID        Field = "teamId"
	FieldCollaborators Field = "collaborators"
	FieldGoalID        Field = "goalId"
	FieldObjectiveID   Field = "objectiveId"
	FieldTaskID        Field = "taskId"
	FieldParentID      Field = "parentId"
	FieldCategoryID    Field = "categoryId"
	FieldPeriodID      Field = "periodId"
	FieldArchived      Field = "archived"
	FieldIsSubtask     Field = "isSubtask"
	FieldCreatedAt     Field = "createdAt"
)

// Op is a clause operator.
type Op string

const (
	OpEq       Op = "eq"
	OpIn       Op = "in"
	OpGte      Op = "gte"
	OpLte      Op = "lte"
	OpContains Op = "contains" // case-insensitive substring
	OpIsNull   Op = "isNull"
	OpOverlaps Op = "overlaps" // array field shares at least one element with Value
	OpOr       Op = "or"
)

// Clause is one field constraint. For OpOr, Field and Value are unused and
// Any holds the alternatives.
type Clause struct {
	Field Field
	Op    Op
	Value any
	Any   []Clause
}

// Predicate is a conjunction of clauses.
type Predicate struct {
	Clauses []Clause
}

// And appends clauses and returns the predicate for chaining.
func (p *Predicate) And(c ...Clause) *Predicate {
	p.Clauses = append(p.Clauses, c...)
	return p
}

// Find returns the first top-level clause on field f.
func (p Predicate) Find(f Field) (Clause, bool) {
	for _, c := range p.Clauses {
		if c.Field == f {
			return c, true
		}
	}
	return Clause{}, false
}

func Eq(f Field, v any) Clause { return Clause{Field: f, Op: OpEq, Value: v} }
func In(f Field, v any) Clause { return Clause{Field: f, Op: OpIn, Value: v} }
func Gte(f Field, v any) Clause { return Clause{Field: f, Op: OpGte, Value: v} }
func Lte(f Field, v any) Clause { return Clause{Field: f, Op: OpLte, Value: v} }
func Contains(f Field, s string) Clause { return Clause{Field: f, Op: OpContains, Value: s} }
func IsNull(f Field) Clause { return Clause{Field: f, Op: OpIsNull} }
func Overlaps(f Field, v any) Clause { return Clause{Field: f, Op: OpOverlaps, Value: v} }
func Or(alts ...Clause) Clause { return Clause{Op: OpOr, Any: alts} }
