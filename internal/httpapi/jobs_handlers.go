package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jobboard-engine/internal/aggregate"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/query"
	"jobboard-engine/internal/window"
)

type JobsHandler struct {
	Load     func(ctx context.Context) (aggregate.Result, error)
	Hub      *events.Hub
	PageSize int
}

type jobsResponse struct {
	Jobs          []domain.Job              `json:"jobs"`
	TotalCount    int                       `json:"totalCount"`
	TotalPages    int                       `json:"totalPages"`
	Page          int                       `json:"page"`
	FailedSources []aggregate.SourceFailure `json:"failedSources,omitempty"`
}

// List loads a fresh collection from the feeds and answers one query over
// it. There is no cache: the collection lives for this request only.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := h.Load(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "load_failed", err.Error())
		return
	}

	jobs := res.Jobs
	if wk := q.Get("window"); wk != "" && wk != "all" {
		kind, ok := window.ParseKind(wk)
		if !ok {
			WriteError(w, r, http.StatusBadRequest, "bad_window", "window must be today, yesterday, this-week, last-week or all")
			return
		}
		jobs = window.Select(jobs, kind, time.Now())
	}

	var sources []string
	if s := q.Get("sources"); s != "" {
		sources = strings.Split(s, ",")
	}

	opts := query.Options{
		Search:  q.Get("search"),
		Sources: sources,
		Sort:    query.ParseSortKey(q.Get("sort")),
		Desc:    q.Get("order") != "asc",
	}

	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}
	pageSize := h.PageSize
	if ps, err := strconv.Atoi(q.Get("page_size")); err == nil && ps > 0 {
		pageSize = ps
	}

	pg := query.Run(jobs, opts, page, pageSize)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, "jobs_loaded", 1, map[string]any{
		"total":  pg.TotalCount,
		"failed": len(res.Failed),
	}))

	writeJSON(w, jobsResponse{
		Jobs:          pg.Jobs,
		TotalCount:    pg.TotalCount,
		TotalPages:    pg.TotalPages,
		Page:          page,
		FailedSources: res.Failed,
	})
}

// Windows reports the four computed windows for "now"; the UI uses it for
// captions and it doubles as a debugging aid.
func (h JobsHandler) Windows(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	out := map[string]map[string]string{}
	for _, k := range []window.Kind{window.Today, window.Yesterday, window.ThisWeek, window.LastWeek} {
		start, end := window.Compute(k, now)
		out[string(k)] = map[string]string{
			"start": start.Format(time.RFC3339),
			"end":   end.Format(time.RFC3339),
		}
	}
	writeJSON(w, out)
}
