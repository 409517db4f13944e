// Package counter mints per-tenant, per-kind human codes ("TS-42").
package counter

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// The upsert is a single atomic statement: concurrent callers serialize on
// the row lock and each receives a distinct value.
const nextSQL = `
INSERT INTO counters (company_domain, kind, seq)
VALUES ($1, $2, 1)
ON CONFLICT (company_domain, kind) DO UPDATE SET seq = counters.seq + 1
RETURNING seq`

// Repo provides counter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new counter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Next increments the tenant's counter for kind and returns the new code.
func (r *Repo) Next(ctx context.Context, tenant string, kind domain.EntityKind) (string, error) {
	var seq int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, nextSQL, tenant, string(kind)).Scan(&seq)
	if err != nil {
		return "", postgres.MapError(err, "counter", tenant+"/"+string(kind))
	}
	return fmt.Sprintf("%s-%d", kind.CodePrefix(), seq), nil
}
