// Package rod provides a headless Chrome implementation of htmlcheck.Fetcher
// for pages that build their DOM with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/htmlcheck"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default timeout for loading a page.
const DefaultFetchTimeout = 10 * time.Second

// renderedContentType is reported for every page: the DOM is serialized
// by the browser, so the encoding is always UTF-8.
const renderedContentType = "text/html; charset=utf-8"

// Ensure Fetcher implements htmlcheck.Fetcher at compile time.
var _ htmlcheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	timeout     time.Duration
	renderDelay time.Duration

	mu     sync.Mutex
	closed atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds how long a single Fetch may take, including the
// render delay. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRenderDelay waits the given duration after the load event before
// serializing the DOM, for pages that render asynchronously.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*htmlcheck.Source, error) {
	if f.closed.Load() {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, navigationError(parent, url, fmt.Errorf("opening page: %w", err))
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, navigationError(parent, url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, navigationError(parent, url, err)
	}

	if f.renderDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, navigationError(parent, url, ctx.Err())
		case <-time.After(f.renderDelay):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, navigationError(parent, url, err)
	}

	location := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		location = info.URL
	}

	return &htmlcheck.Source{
		Location:    location,
		ContentType: renderedContentType,
		Body:        []byte(html),
	}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.launcher.PID()
}

// navigationError reports browser failures, including the fetch timeout,
// as EFETCH. When the caller's context is done its error is returned as is
// so callers can match it with errors.Is.
func navigationError(parent context.Context, url string, err error) error {
	if parent.Err() != nil {
		return err
	}
	return htmlcheck.Errorf(htmlcheck.EFETCH, "%s: %v", url, err)
}
