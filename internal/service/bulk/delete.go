// Package bulk implements the id-list delete shared by every listable kind.
package bulk

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeleteFunc removes the records with the given ids and returns the ids that
// existed in the tenant.
type DeleteFunc func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

// Delete parses raw ids, removes the valid ones in one transaction and
// reports an outcome for every requested id in request order. A malformed id
// is recorded as invalid and never aborts the request. Repeated ids are
// reported once.
func Delete(ctx context.Context, tx txManager, raw []string, del DeleteFunc) (domain.DeleteSummary, error) {
	if len(raw) == 0 {
		return domain.DeleteSummary{}, domain.NewValidationError("ids", "at least one id is required")
	}

	type requested struct {
		raw string
		id  uuid.UUID
		err error
	}

	reqs := make([]requested, 0, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	seenRaw := make(map[string]struct{}, len(raw))
	seenID := make(map[uuid.UUID]struct{}, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)

		id, err := uuid.Parse(r)
		if err != nil {
			if _, dup := seenRaw[r]; dup {
				continue
			}
			seenRaw[r] = struct{}{}
			reqs = append(reqs, requested{raw: r, err: &domain.IDError{Field: "ids", Value: r}})
			continue
		}
		// Case variants of one id collapse here.
		if _, dup := seenID[id]; dup {
			continue
		}
		seenID[id] = struct{}{}
		reqs = append(reqs, requested{raw: r, id: id})
		ids = append(ids, id)
	}

	deleted := make(map[uuid.UUID]struct{}, len(ids))
	if len(ids) > 0 {
		err := tx.RunInTx(ctx, func(ctx context.Context) error {
			got, err := del(ctx, ids)
			if err != nil {
				return err
			}
			for _, id := range got {
				deleted[id] = struct{}{}
			}
			return nil
		})
		if err != nil {
			return domain.DeleteSummary{}, fmt.Errorf("bulk delete: %w", err)
		}
	}

	var summary domain.DeleteSummary
	for _, r := range reqs {
		switch {
		case r.err != nil:
			summary.Add(domain.DeleteDetail{ID: r.raw, Outcome: domain.DeleteOutcomeInvalid, Err: r.err})
		case hasID(deleted, r.id):
			summary.Add(domain.DeleteDetail{ID: r.raw, Outcome: domain.DeleteOutcomeDeleted})
		default:
			summary.Add(domain.DeleteDetail{ID: r.raw, Outcome: domain.DeleteOutcomeNotFound, Err: domain.ErrNotFound})
		}
	}
	return summary, nil
}

func hasID(set map[uuid.UUID]struct{}, id uuid.UUID) bool {
	_, ok := set[id]
	return ok
}
