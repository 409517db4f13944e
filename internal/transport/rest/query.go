package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
)

// listParams copies the list query string into RawParams. Decoding and
// validation happen in the listing service.
func listParams(q url.Values) listing.RawParams {
	return listing.RawParams{
		Count:      q.Get("count"),
		Search:     q.Get("search"),
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
		Due:        q.Get("due"),
		Priority:   q.Get("priority"),
		Status:     q.Get("status"),
		Users:      q.Get("users"),
		Teams:      q.Get("teams"),
		Goals:      q.Get("goals"),
		Objectives: q.Get("objectives"),
		Tasks:      q.Get("tasks"),
		Categories: q.Get("categories"),
		Weights:    q.Get("weights"),
		Period:     q.Get("period"),
		View:       q.Get("view"),
	}
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// bulkIDs reads the ids of a bulk delete. The body {"ids": [...]} wins; an
// empty body falls back to ?ids=a,b or ?ids=["a","b"].
func bulkIDs(r *http.Request) ([]string, error) {
	if r.Body != nil && r.Body != http.NoBody {
		var req bulkDeleteRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		switch {
		case err == nil:
			if len(req.IDs) > 0 {
				return req.IDs, nil
			}
		case errors.Is(err, io.EOF):
		default:
			return nil, domain.NewValidationError("ids", "must be an array of strings")
		}
	}

	raw := strings.TrimSpace(r.URL.Query().Get("ids"))
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "[") {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return nil, domain.NewValidationError("ids", "must be an array of strings")
		}
		return ids, nil
	}

	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids, nil
}
