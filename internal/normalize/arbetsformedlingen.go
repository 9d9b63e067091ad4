package normalize

import (
	"fmt"

	"jobboard-engine/internal/csvio"
	"jobboard-engine/internal/dates"
	"jobboard-engine/internal/domain"
)

// Platsbanken ads have no link field; detail URLs are built from the ad id.
const platsbankenAdURL = "https://arbetsformedlingen.se/platsbanken/annonser/%s"

// FallbackTitle labels ads whose occupation field is blank.
const FallbackTitle = "Job Opening"

// Arbetsformedlingen rows carry a native ad id, so ids survive a reordered
// source file, unlike the ordinal-id feeds.
type Arbetsformedlingen struct{}

func (Arbetsformedlingen) Source() domain.Source { return domain.SourceArbetsformedlingen }

func (Arbetsformedlingen) Normalize(rows []csvio.Row) []domain.Job {
	jobs := make([]domain.Job, 0, len(rows))
	for _, row := range rows {
		title := row["occupation"]
		if title == "" {
			title = FallbackTitle
		}

		jobs = append(jobs, domain.Job{
			ID:         "arbetsformedlingen-" + row["id"],
			Title:      title,
			URL:        fmt.Sprintf(platsbankenAdURL, row["id"]),
			DateAdded:  dates.Parse(row["data_added"]),
			Source:     domain.SourceArbetsformedlingen,
			Email:      row["email"],
			City:       row["city"],
			Occupation: row["occupation"],
		})
	}
	return jobs
}
