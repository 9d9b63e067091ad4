// Package aggregate fans out over the configured feeds, normalizes each
// one and concatenates the results into a single canonical collection.
// The collection is rebuilt from the feeds on every call; nothing is
// cached between loads.
package aggregate

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"jobboard-engine/internal/csvio"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/fetch"
	"jobboard-engine/internal/normalize"
)

// Source pairs a fetcher with the normalizer for its schema.
type Source struct {
	Fetcher    fetch.Fetcher
	Normalizer normalize.Normalizer
}

// SourceFailure reports one feed that could not be loaded.
type SourceFailure struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// Result is one load cycle's output. Jobs holds whatever feeds succeeded,
// concatenated in the loader's fixed source order; Failed names the rest.
type Result struct {
	Jobs   []domain.Job
	Failed []SourceFailure
}

type Loader struct {
	sources []Source
	timeout time.Duration
}

func NewLoader(sources []Source, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Loader{sources: sources, timeout: timeout}
}

// LoadAll fetches every feed concurrently, joins on all of them, then
// normalizes and concatenates in source order. A failed feed is recorded
// and skipped rather than sinking the batch; only a dead parent context
// fails the whole load.
func (l *Loader) LoadAll(ctx context.Context) (Result, error) {
	raws := make([][]byte, len(l.sources))
	errs := make([]error, len(l.sources))

	var g errgroup.Group
	for i, s := range l.sources {
		i, s := i, s
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, l.timeout)
			defer cancel()

			log.Printf("[%s] fetching...", s.Fetcher.Name())
			b, err := s.Fetcher.Fetch(fctx)
			if err != nil {
				log.Printf("[%s] fetch error: %v", s.Fetcher.Name(), err)
				errs[i] = err
				return nil // best-effort: don't cancel siblings
			}
			raws[i] = b
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var res Result
	for i, s := range l.sources {
		if errs[i] != nil {
			res.Failed = append(res.Failed, SourceFailure{
				Source: s.Fetcher.Name(),
				Error:  errs[i].Error(),
			})
			continue
		}
		jobs := s.Normalizer.Normalize(csvio.Parse(string(raws[i])))
		log.Printf("[%s] normalized %d rows", s.Fetcher.Name(), len(jobs))
		res.Jobs = append(res.Jobs, jobs...)
	}
	return res, nil
}
