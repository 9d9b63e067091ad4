package normalize

import (
	"fmt"

	"jobboard-engine/internal/csvio"
	"jobboard-engine/internal/dates"
	"jobboard-engine/internal/domain"
)

// Meritmind rows carry title, link and data_added. The feed has no native
// job id, so ids are ordinal within the file. The feed is append-only in
// practice, which keeps the ordinals stable across loads.
type Meritmind struct{}

func (Meritmind) Source() domain.Source { return domain.SourceMeritmind }

func (Meritmind) Normalize(rows []csvio.Row) []domain.Job {
	jobs := make([]domain.Job, 0, len(rows))
	for i, row := range rows {
		jobs = append(jobs, domain.Job{
			ID:        fmt.Sprintf("meritmind-%d", i),
			Title:     row["title"],
			URL:       row["link"],
			DateAdded: dates.Parse(row["data_added"]),
			Source:    domain.SourceMeritmind,
		})
	}
	return jobs
}
