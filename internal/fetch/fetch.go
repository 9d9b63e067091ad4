// Package fetch retrieves raw CSV bytes for one feed. The aggregator does
// not care whether a locator points at a local file or an HTTP endpoint;
// both satisfy the same interface.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// ForLocator picks the fetcher implementation for a source locator.
func ForLocator(name, locator string, lim *HostLimiter) Fetcher {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return NewHTTPFetcher(name, locator, lim)
	}
	return FileFetcher{SourceName: name, Path: locator}
}

// FileFetcher reads a feed's CSV from disk.
type FileFetcher struct {
	SourceName string
	Path       string
}

func (f FileFetcher) Name() string { return f.SourceName }

func (f FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s feed: %w", f.SourceName, err)
	}
	return b, nil
}

// HTTPFetcher pulls a feed's CSV over HTTP, rate-limited per host.
type HTTPFetcher struct {
	SourceName string
	URL        string
	Limiter    *HostLimiter
	hc         *http.Client
}

func NewHTTPFetcher(name, url string, lim *HostLimiter) *HTTPFetcher {
	return &HTTPFetcher{
		SourceName: name,
		URL:        url,
		Limiter:    lim,
		hc:         &http.Client{Timeout: 20 * time.Second},
	}
}

func (f *HTTPFetcher) Name() string { return f.SourceName }

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if f.Limiter != nil {
		if err := f.Limiter.WaitURL(ctx, f.URL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "JobBoard/1.0 (+local)")

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s get feed: %w", f.SourceName, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%s feed status %d", f.SourceName, res.StatusCode)
	}
	return io.ReadAll(res.Body)
}
