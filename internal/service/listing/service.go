package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

type periodFinder interface {
	Current(ctx context.Context, tenant string, nowMillis int64) (domain.Period, error)
}

// Query is a fully prepared list request.
type Query struct {
	Tenant    string
	Filter    domain.ListFilter
	Predicate domain.Predicate
	Page      domain.Page
}

// Service turns raw list parameters into a tenant-scoped Query.
type Service struct {
	periods  periodFinder
	cal      Calendar
	pageSize int
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a listing service. pageSize is the fixed page length.
func NewService(log *slog.Logger, periods periodFinder, cal Calendar, pageSize int) *Service {
	return &Service{
		periods:  periods,
		cal:      cal,
		pageSize: pageSize,
		now:      time.Now,
		log:      log.With("service", "listing"),
	}
}

// Prepare normalizes raw, resolves the current period when asked for and
// builds the predicate for kind. The tenant comes from the caller identity
// only.
func (s *Service) Prepare(ctx context.Context, kind domain.EntityKind, raw RawParams) (Query, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return Query{}, domain.ErrUnauthorized
	}

	now := s.now()
	f, err := Normalize(raw, now, s.cal)
	if err != nil {
		return Query{}, err
	}

	if f.PeriodMode == domain.PeriodCurrent && (kind == domain.KindTask || kind == domain.KindGoal) {
		current, err := s.periods.Current(ctx, id.CompanyDomain, now.UnixMilli())
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.log.DebugContext(ctx, "no current period", slog.String("company_domain", id.CompanyDomain))
			f.PeriodID = ""
		case err != nil:
			return Query{}, fmt.Errorf("resolve current period: %w", err)
		default:
			f.PeriodID = current.ID.String()
		}
	}

	pred, err := BuildPredicate(kind, id.CompanyDomain, f)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Tenant:    id.CompanyDomain,
		Filter:    f,
		Predicate: pred,
		Page:      domain.Page{Index: f.PageIndex, Size: s.pageSize},
	}, nil
}
