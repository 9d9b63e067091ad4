// Package normalize maps tokenized rows of each feed's schema into the
// canonical Job record. One normalizer per feed; none share parsing state.
package normalize

import (
	"jobboard-engine/internal/csvio"
	"jobboard-engine/internal/domain"
)

type Normalizer interface {
	Source() domain.Source
	Normalize(rows []csvio.Row) []domain.Job
}

// ForSource returns the normalizer for a known feed, or nil.
func ForSource(s domain.Source) Normalizer {
	switch s {
	case domain.SourceMeritmind:
		return Meritmind{}
	case domain.SourcePoolia:
		return Poolia{}
	case domain.SourceArbetsformedlingen:
		return Arbetsformedlingen{}
	}
	return nil
}
