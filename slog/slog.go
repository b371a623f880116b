// Package slog provides log/slog decorators for the htmlcheck collaborators.
// Each decorator emits one record per call with its duration and error.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingFetcher implements htmlcheck.Fetcher.
var _ htmlcheck.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   htmlcheck.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next htmlcheck.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (src *htmlcheck.Source, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin), "err", err}
		if src != nil {
			attrs = append(attrs, "bytes", len(src.Body), "content_type", src.ContentType)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingSourceReader implements htmlcheck.SourceReader.
var _ htmlcheck.SourceReader = (*LoggingSourceReader)(nil)

// LoggingSourceReader wraps a SourceReader with logging.
type LoggingSourceReader struct {
	next   htmlcheck.SourceReader
	logger *slog.Logger
}

// NewLoggingSourceReader creates a new LoggingSourceReader.
func NewLoggingSourceReader(next htmlcheck.SourceReader, logger *slog.Logger) *LoggingSourceReader {
	return &LoggingSourceReader{next: next, logger: logger}
}

// ReadSource delegates to the wrapped reader and logs the operation.
func (r *LoggingSourceReader) ReadSource(path string) (src *htmlcheck.Source, err error) {
	defer func(begin time.Time) {
		size := 0
		if src != nil {
			size = len(src.Body)
		}
		r.logger.Info("read source",
			"path", path,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadSource(path)
}

// Ensure LoggingSelectorLoader implements htmlcheck.SelectorLoader.
var _ htmlcheck.SelectorLoader = (*LoggingSelectorLoader)(nil)

// LoggingSelectorLoader wraps a SelectorLoader with logging.
type LoggingSelectorLoader struct {
	next   htmlcheck.SelectorLoader
	logger *slog.Logger
}

// NewLoggingSelectorLoader creates a new LoggingSelectorLoader.
func NewLoggingSelectorLoader(next htmlcheck.SelectorLoader, logger *slog.Logger) *LoggingSelectorLoader {
	return &LoggingSelectorLoader{next: next, logger: logger}
}

// LoadSelectors delegates to the wrapped loader and logs the operation.
func (l *LoggingSelectorLoader) LoadSelectors(path string) (selectors []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load selectors",
			"path", path,
			"count", len(selectors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadSelectors(path)
}

// Ensure LoggingParser implements htmlcheck.DocumentParser.
var _ htmlcheck.DocumentParser = (*LoggingParser)(nil)

// LoggingParser wraps a DocumentParser with logging.
type LoggingParser struct {
	next   htmlcheck.DocumentParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next htmlcheck.DocumentParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(src *htmlcheck.Source) (doc htmlcheck.Document, err error) {
	defer func(begin time.Time) {
		location := ""
		if src != nil {
			location = src.Location
		}
		p.logger.Info("parse",
			"location", location,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(src)
}
