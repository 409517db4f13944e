package listing

import (
	"time"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Calendar fixes the local day and week boundaries used by due buckets.
type Calendar struct {
	Location     *time.Location
	FirstWeekday time.Weekday
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// ResolveDue returns the inclusive [start, end] window of bucket around now,
// in epoch millis: start is 00:00:00.000 of the first local day and end is
// 23:59:59.999 of the last one.
func ResolveDue(bucket domain.DueBucket, now time.Time, cal Calendar) domain.DueWindow {
	local := now.In(cal.location())
	y, m, d := local.Date()
	loc := local.Location()

	var start, next time.Time
	switch bucket {
	case domain.DueThisWeek:
		back := (int(local.Weekday()) - int(cal.FirstWeekday) + 7) % 7
		start = time.Date(y, m, d-back, 0, 0, 0, 0, loc)
		next = time.Date(y, m, d-back+7, 0, 0, 0, 0, loc)
	case domain.DueThisMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		next = time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
	default:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		next = time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	}

	return domain.DueWindow{
		Bucket: bucket,
		Start:  start.UnixMilli(),
		End:    next.UnixMilli() - 1,
	}
}
