package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/domain"
)

func sampleJobs() []domain.Job {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Job{
		{ID: "meritmind-0", Title: "Senior Accountant", Source: domain.SourceMeritmind, DateAdded: base.AddDate(0, 0, 3)},
		{ID: "poolia-0", Title: "Engineer, Payroll Systems", Source: domain.SourcePoolia, DateAdded: base.AddDate(0, 0, 1)},
		{ID: "arbetsformedlingen-1", Title: "Revisor", Occupation: "Revisor", City: "Stockholm", Source: domain.SourceArbetsformedlingen, DateAdded: base.AddDate(0, 0, 2)},
		{ID: "arbetsformedlingen-2", Title: "Job Opening", Occupation: "", City: "Engelsberg", Source: domain.SourceArbetsformedlingen, DateAdded: base},
	}
}

func TestFilterSearchTerm(t *testing.T) {
	jobs := sampleJobs()

	got := Filter(jobs, "engineer", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "poolia-0", got[0].ID)

	// case-insensitive, city matches too
	got = Filter(jobs, "STOCKHOLM", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "arbetsformedlingen-1", got[0].ID)
}

func TestFilterEmptyTermMatchesAll(t *testing.T) {
	jobs := sampleJobs()
	assert.Len(t, Filter(jobs, "", nil), len(jobs))
	assert.Len(t, Filter(jobs, "   ", nil), len(jobs))
}

func TestFilterSourceSet(t *testing.T) {
	jobs := sampleJobs()

	got := Filter(jobs, "", []string{"poolia", "meritmind"})
	assert.Len(t, got, 2)

	// empty set means no restriction, not "match nothing"
	got = Filter(jobs, "", []string{})
	assert.Len(t, got, len(jobs))

	got = Filter(jobs, "", []string{" ", ""})
	assert.Len(t, got, len(jobs))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	before := fmt.Sprint(jobs)

	_ = Filter(jobs, "revisor", []string{"arbetsformedlingen"})
	assert.Equal(t, before, fmt.Sprint(jobs))
}

func TestSortByDate(t *testing.T) {
	jobs := sampleJobs()

	Sort(jobs, SortDate, false)
	for i := 1; i < len(jobs); i++ {
		assert.False(t, jobs[i].DateAdded.Before(jobs[i-1].DateAdded))
	}

	Sort(jobs, SortDate, true)
	for i := 1; i < len(jobs); i++ {
		assert.False(t, jobs[i].DateAdded.After(jobs[i-1].DateAdded))
	}
}

func TestSortByTitleCollated(t *testing.T) {
	jobs := []domain.Job{
		{ID: "a", Title: "Östersund"},
		{ID: "b", Title: "Ekonom"},
		{ID: "c", Title: "Arkivarie"},
	}

	Sort(jobs, SortTitle, false)

	// swedish collation puts Ö after plain letters
	assert.Equal(t, "c", jobs[0].ID)
	assert.Equal(t, "b", jobs[1].ID)
	assert.Equal(t, "a", jobs[2].ID)
}

func TestSortStableOnEqualKeys(t *testing.T) {
	ts := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{ID: "first", DateAdded: ts},
		{ID: "second", DateAdded: ts},
		{ID: "third", DateAdded: ts},
	}

	Sort(jobs, SortDate, true)

	assert.Equal(t, "first", jobs[0].ID)
	assert.Equal(t, "second", jobs[1].ID)
	assert.Equal(t, "third", jobs[2].ID)
}

func TestPaginate(t *testing.T) {
	jobs := make([]domain.Job, 120)
	for i := range jobs {
		jobs[i] = domain.Job{ID: fmt.Sprintf("meritmind-%d", i)}
	}

	p1 := Paginate(jobs, 1, 50)
	assert.Equal(t, 120, p1.TotalCount)
	assert.Equal(t, 3, p1.TotalPages)
	assert.Len(t, p1.Jobs, 50)
	assert.Equal(t, "meritmind-0", p1.Jobs[0].ID)

	p3 := Paginate(jobs, 3, 50)
	assert.Len(t, p3.Jobs, 20)
	assert.Equal(t, "meritmind-100", p3.Jobs[0].ID)

	// beyond the last page: empty, not an error
	p4 := Paginate(jobs, 4, 50)
	assert.Empty(t, p4.Jobs)
	assert.Equal(t, 120, p4.TotalCount)
	assert.Equal(t, 3, p4.TotalPages)
}

func TestPaginateDefaults(t *testing.T) {
	jobs := make([]domain.Job, 3)

	p := Paginate(jobs, 0, 0)
	assert.Len(t, p.Jobs, 3)
	assert.Equal(t, 1, p.TotalPages)
}

func TestRunEndToEnd(t *testing.T) {
	jobs := sampleJobs()

	p := Run(jobs, Options{
		Search:  "revisor",
		Sources: []string{"arbetsformedlingen"},
		Sort:    SortDate,
		Desc:    true,
	}, 1, 50)

	require.Len(t, p.Jobs, 1)
	assert.Equal(t, "arbetsformedlingen-1", p.Jobs[0].ID)
	assert.Equal(t, 1, p.TotalCount)
	assert.Equal(t, 1, p.TotalPages)

	// original collection untouched and still queryable
	assert.Len(t, jobs, 4)
	p2 := Run(jobs, Options{Sort: SortTitle}, 1, 2)
	assert.Equal(t, 4, p2.TotalCount)
	assert.Equal(t, 2, p2.TotalPages)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortTitle, ParseSortKey("title"))
	assert.Equal(t, SortSource, ParseSortKey("source"))
	assert.Equal(t, SortDate, ParseSortKey(""))
	assert.Equal(t, SortDate, ParseSortKey("score"))
}
