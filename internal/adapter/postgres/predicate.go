package postgres

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Builder is the squirrel statement builder for PostgreSQL placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Columns maps engine-neutral fields to the columns of one table. A field
// missing from the map cannot be queried on that table.
type Columns map[domain.Field]string

// Where renders p as a squirrel conjunction over cols.
func Where(p domain.Predicate, cols Columns) (squirrel.And, error) {
	and := make(squirrel.And, 0, len(p.Clauses))
	for _, c := range p.Clauses {
		s, err := clause(c, cols)
		if err != nil {
			return nil, err
		}
		and = append(and, s)
	}
	return and, nil
}

func clause(c domain.Clause, cols Columns) (squirrel.Sqlizer, error) {
	if c.Op == domain.OpOr {
		or := make(squirrel.Or, 0, len(c.Any))
		for _, alt := range c.Any {
			s, err := clause(alt, cols)
			if err != nil {
				return nil, err
			}
			or = append(or, s)
		}
		return or, nil
	}

	col, ok := cols[c.Field]
	if !ok {
		return nil, fmt.Errorf("postgres: field %q is not queryable here", c.Field)
	}

	switch c.Op {
	case domain.OpEq:
		return squirrel.Eq{col: c.Value}, nil
	case domain.OpIn:
		// One array parameter instead of an expanded IN list.
		return squirrel.Expr(col+" = ANY(?)", c.Value), nil
	case domain.OpGte:
		return squirrel.GtOrEq{col: c.Value}, nil
	case domain.OpLte:
		return squirrel.LtOrEq{col: c.Value}, nil
	case domain.OpContains:
		s, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("postgres: contains on %q needs a string, got %T", c.Field, c.Value)
		}
		return squirrel.ILike{col: "%" + EscapeLike(s) + "%"}, nil
	case domain.OpIsNull:
		return squirrel.Eq{col: nil}, nil
	case domain.OpOverlaps:
		return squirrel.Expr(col+" && ?", c.Value), nil
	default:
		return nil, fmt.Errorf("postgres: unsupported operator %q", c.Op)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
