package normalize

import (
	"fmt"

	"jobboard-engine/internal/csvio"
	"jobboard-engine/internal/dates"
	"jobboard-engine/internal/domain"
)

// Poolia is the only feed reporting published_date and apply_by_date.
// Ids are ordinal like Meritmind's.
type Poolia struct{}

func (Poolia) Source() domain.Source { return domain.SourcePoolia }

func (Poolia) Normalize(rows []csvio.Row) []domain.Job {
	jobs := make([]domain.Job, 0, len(rows))
	for i, row := range rows {
		published := dates.Parse(row["published_date"])
		applyBy := dates.Parse(row["apply_by_date"])

		jobs = append(jobs, domain.Job{
			ID:            fmt.Sprintf("poolia-%d", i),
			Title:         row["title"],
			URL:           row["job_url"],
			DateAdded:     dates.Parse(row["data_added"]),
			Source:        domain.SourcePoolia,
			PublishedDate: &published,
			ApplyByDate:   &applyBy,
		})
	}
	return jobs
}
