package domain

import "time"

// Source identifies which feed a job listing came from. The set is closed:
// records carrying any other tag never enter the aggregated collection.
type Source string

const (
	SourceMeritmind          Source = "meritmind"
	SourcePoolia             Source = "poolia"
	SourceArbetsformedlingen Source = "arbetsformedlingen"
)

func Sources() []Source {
	return []Source{SourceMeritmind, SourcePoolia, SourceArbetsformedlingen}
}

func (s Source) Valid() bool {
	switch s {
	case SourceMeritmind, SourcePoolia, SourceArbetsformedlingen:
		return true
	}
	return false
}

// Job is the canonical record all three feeds are normalized into.
// ID is unique across the whole aggregated collection because the source
// tag is part of the key.
type Job struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	DateAdded     time.Time  `json:"dateAdded"`
	Source        Source     `json:"source"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	ApplyByDate   *time.Time `json:"applyByDate,omitempty"`
	Email         string     `json:"email,omitempty"`
	City          string     `json:"city,omitempty"`
	Occupation    string     `json:"occupation,omitempty"`
}
