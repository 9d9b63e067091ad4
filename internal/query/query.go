// Package query implements the free-text filter, source filter, stable
// sort and page slicing over a canonical job collection. Every operation
// returns a new slice; the input collection is never mutated, so one load
// can serve any number of independent queries.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"jobboard-engine/internal/domain"
)

type SortKey string

const (
	SortDate   SortKey = "date"
	SortTitle  SortKey = "title"
	SortSource SortKey = "source"
)

// ParseSortKey whitelists the sort column; anything else falls back to
// date, the default ordering.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortDate, SortTitle, SortSource:
		return SortKey(s)
	}
	return SortDate
}

type Options struct {
	Search  string
	Sources []string
	Sort    SortKey
	Desc    bool
}

type Page struct {
	Jobs       []domain.Job `json:"jobs"`
	TotalCount int          `json:"totalCount"`
	TotalPages int          `json:"totalPages"`
}

const DefaultPageSize = 50

// Run filters, sorts and slices in one pass. Pagination is 1-indexed; a
// page past the end yields an empty page, not an error.
func Run(jobs []domain.Job, opts Options, page, pageSize int) Page {
	filtered := Filter(jobs, opts.Search, opts.Sources)
	Sort(filtered, opts.Sort, opts.Desc)
	return Paginate(filtered, page, pageSize)
}

// Filter returns the jobs matching the search term and source set. An
// empty term matches everything; an empty source set means no
// restriction. The term is matched case-insensitively as a substring
// against title, occupation and city; any hit keeps the record.
func Filter(jobs []domain.Job, search string, sources []string) []domain.Job {
	srcSet := map[string]bool{}
	for _, s := range sources {
		s = strings.TrimSpace(s)
		if s != "" {
			srcSet[s] = true
		}
	}
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if len(srcSet) > 0 && !srcSet[string(j.Source)] {
			continue
		}
		if term != "" && !matchesTerm(j, term) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func matchesTerm(j domain.Job, term string) bool {
	if strings.Contains(strings.ToLower(j.Title), term) {
		return true
	}
	if j.Occupation != "" && strings.Contains(strings.ToLower(j.Occupation), term) {
		return true
	}
	if j.City != "" && strings.Contains(strings.ToLower(j.City), term) {
		return true
	}
	return false
}

// Sort orders jobs in place by the given key. The sort is stable, so
// equal keys keep their relative input order; that is the only tie-break.
// Titles compare under Swedish collation (the feeds are Swedish), dates
// by instant, sources byte-wise on the tag.
func Sort(jobs []domain.Job, key SortKey, desc bool) {
	var cmp func(a, b domain.Job) int

	switch key {
	case SortTitle:
		c := collate.New(language.Swedish)
		cmp = func(a, b domain.Job) int { return c.CompareString(a.Title, b.Title) }
	case SortSource:
		cmp = func(a, b domain.Job) int { return strings.Compare(string(a.Source), string(b.Source)) }
	default:
		cmp = func(a, b domain.Job) int {
			switch {
			case a.DateAdded.Before(b.DateAdded):
				return -1
			case a.DateAdded.After(b.DateAdded):
				return 1
			}
			return 0
		}
	}

	sort.SliceStable(jobs, func(i, k int) bool {
		c := cmp(jobs[i], jobs[k])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// Paginate slices out one 1-indexed page.
func Paginate(jobs []domain.Job, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(jobs)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return Page{Jobs: []domain.Job{}, TotalCount: total, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := make([]domain.Job, end-start)
	copy(out, jobs[start:end])
	return Page{Jobs: out, TotalCount: total, TotalPages: totalPages}
}
