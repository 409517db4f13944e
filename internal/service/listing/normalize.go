package listing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// RawParams are list query parameters exactly as received. An absent
// parameter is the empty string.
type RawParams struct {
	Count      string
	Search     string
	StartDate  string
	EndDate    string
	Due        string
	Priority   string
	Status     string
	Users      string
	Teams      string
	Goals      string
	Objectives string
	Tasks      string
	Categories string
	Weights    string
	Period     string
	View       string
}

const reasonNotArray = "filter must be an array"

// Normalize parses raw parameters into a typed filter. Numeric parameters
// that do not parse are treated as absent. Array parameters that do not
// decode to a JSON array fail with a *domain.FilterError.
func Normalize(raw RawParams, now time.Time, cal Calendar) (domain.ListFilter, error) {
	var f domain.ListFilter

	if n, ok := parseNumber(raw.Count); ok {
		f.PageIndex = int(max(n, 0))
	}
	if n, ok := parseNumber(raw.StartDate); ok {
		f.StartDate = &n
	}
	if n, ok := parseNumber(raw.EndDate); ok {
		f.EndDate = &n
	}

	f.Search = optionalText(raw.Search)
	f.Priority = optionalText(raw.Priority)

	if due := strings.TrimSpace(raw.Due); due != "" {
		bucket := domain.DueBucket(due)
		if !bucket.IsValid() {
			return domain.ListFilter{}, domain.NewFilterError("due", "unknown due bucket")
		}
		w := ResolveDue(bucket, now, cal)
		f.Due = &w
	}

	lists := []struct {
		param string
		raw   string
		dst   *[]string
	}{
		{"users", raw.Users, &f.Users},
		{"teams", raw.Teams, &f.Teams},
		{"goals", raw.Goals, &f.Goals},
		{"objectives", raw.Objectives, &f.Objectives},
		{"tasks", raw.Tasks, &f.Tasks},
		{"categories", raw.Categories, &f.Categories},
		{"weights", raw.Weights, &f.Weights},
	}
	for _, l := range lists {
		vals, err := decodeStrings(l.param, l.raw)
		if err != nil {
			return domain.ListFilter{}, err
		}
		*l.dst = vals
	}

	statuses, err := decodeStatus(raw.Status)
	if err != nil {
		return domain.ListFilter{}, err
	}
	f.Statuses = statuses

	f.Archived = strings.TrimSpace(raw.View) == "archived"

	switch period := strings.TrimSpace(raw.Period); period {
	case "", "undefined", "null":
		f.PeriodMode = domain.PeriodUnassigned
	case "current":
		f.PeriodMode = domain.PeriodCurrent
	default:
		f.PeriodMode = domain.PeriodExplicit
		f.PeriodID = period
	}
	// The archived view spans every period unless one is named explicitly.
	if f.Archived && f.PeriodMode != domain.PeriodExplicit {
		f.PeriodMode = domain.PeriodAny
	}

	return f, nil
}

// parseNumber accepts integer or finite decimal strings. Anything else
// ("", "NaN", "undefined", "Infinity") reports ok=false.
func parseNumber(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(fl) || math.IsInf(fl, 0) || math.Abs(fl) > math.MaxInt64 {
		return 0, false
	}
	return int64(fl), true
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || s == "undefined" {
		return nil
	}
	return &s
}

func decodeArray(param, raw string) ([]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var arr []any
	if err := json.Unmarshal([]byte(raw), &arr); err != nil || arr == nil {
		return nil, domain.NewFilterError(param, reasonNotArray)
	}
	return arr, nil
}

func decodeStrings(param, raw string) ([]string, error) {
	arr, err := decodeArray(param, raw)
	if err != nil || arr == nil {
		return nil, err
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, domain.NewFilterError(param, "filter must be an array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}

// decodeStatus expands the positional boolean array
// [Completed, In review, In progress, Not started] into a status set.
// Missing slots are false. An all-false array yields no constraint.
func decodeStatus(raw string) ([]domain.TaskStatus, error) {
	arr, err := decodeArray("status", raw)
	if err != nil || arr == nil {
		return nil, err
	}
	if len(arr) > len(domain.StatusSlots) {
		return nil, domain.NewFilterError("status", "filter must have at most 4 slots")
	}

	var out []domain.TaskStatus
	for i, v := range arr {
		on, ok := v.(bool)
		if !ok {
			return nil, domain.NewFilterError("status", "filter slots must be booleans")
		}
		if on {
			out = append(out, domain.StatusSlots[i])
		}
	}
	return out, nil
}
