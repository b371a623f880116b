package mock

import (
	"context"

	"github.com/fwojciec/htmlcheck"
)

var _ htmlcheck.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of htmlcheck.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*htmlcheck.Source, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*htmlcheck.Source, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
