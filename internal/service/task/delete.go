package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/bulk"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// BulkDelete removes tasks and their subtasks by id.
func (s *Service) BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.DeleteSummary{}, domain.ErrUnauthorized
	}

	summary, err := bulk.Delete(ctx, s.tx, ids, func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
		return s.tasks.DeleteByIDs(ctx, id.CompanyDomain, ids)
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}

	s.log.InfoContext(ctx, "tasks deleted",
		slog.String("company_domain", id.CompanyDomain),
		slog.Int("deleted", summary.Deleted),
		slog.Int("not_found", summary.NotFound),
		slog.Int("errors", summary.Errors),
	)
	return summary, nil
}
