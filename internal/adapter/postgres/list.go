package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// ListOrder is the default list ordering: newest first, id as tie-break so
// pages stay stable across calls.
var ListOrder = []string{"created_at DESC", "id DESC"}

// ListQuery describes one paginated list read.
type ListQuery struct {
	Table   string
	Columns []string
	Where   squirrel.Sqlizer
	Page    domain.Page
}

// ListPage reads one page of rows plus the total number of rows matching
// q.Where. Outside a transaction the page and count queries run concurrently
// on db; inside one they run sequentially on the tx.
func ListPage[T any](ctx context.Context, db Querier, q ListQuery) (domain.PageResult[T], error) {
	pageSQL, pageArgs, err := Builder.
		Select(q.Columns...).
		From(q.Table).
		Where(q.Where).
		OrderBy(ListOrder...).
		Limit(uint64(q.Page.Size)).
		Offset(uint64(q.Page.Offset())).
		ToSql()
	if err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("build %s page query: %w", q.Table, err)
	}

	countSQL, countArgs, err := Builder.
		Select("count(*)").
		From(q.Table).
		Where(q.Where).
		ToSql()
	if err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("build %s count query: %w", q.Table, err)
	}

	var (
		items []T
		total int
	)

	loadPage := func(ctx context.Context) error {
		if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, db), &items, pageSQL, pageArgs...); err != nil {
			return fmt.Errorf("list %s: %w", q.Table, err)
		}
		return nil
	}
	loadCount := func(ctx context.Context) error {
		if err := QuerierFromCtx(ctx, db).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count %s: %w", q.Table, err)
		}
		return nil
	}

	if InTx(ctx) {
		// A pgx.Tx is a single connection and cannot run two queries at once.
		if err := loadPage(ctx); err != nil {
			return domain.PageResult[T]{}, err
		}
		if err := loadCount(ctx); err != nil {
			return domain.PageResult[T]{}, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return loadPage(gctx) })
		g.Go(func() error { return loadCount(gctx) })
		if err := g.Wait(); err != nil {
			return domain.PageResult[T]{}, err
		}
	}

	if items == nil {
		items = []T{}
	}

	return domain.PageResult[T]{Items: items, TotalRowCount: total}, nil
}
