package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CollectIDs runs a statement that returns a single uuid column (typically
// DELETE .. RETURNING id) and collects the values.
func CollectIDs(ctx context.Context, q Querier, sql string, args ...any) ([]uuid.UUID, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, MapError(err, "ids", "query")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, MapError(err, "ids", "collect")
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}
