package mock

import "github.com/fwojciec/htmlcheck"

var _ htmlcheck.SelectorLoader = (*SelectorLoader)(nil)

// SelectorLoader is a mock implementation of htmlcheck.SelectorLoader.
type SelectorLoader struct {
	LoadSelectorsFn func(path string) ([]string, error)
}

func (l *SelectorLoader) LoadSelectors(path string) ([]string, error) {
	return l.LoadSelectorsFn(path)
}

var _ htmlcheck.SourceReader = (*SourceReader)(nil)

// SourceReader is a mock implementation of htmlcheck.SourceReader.
type SourceReader struct {
	ReadSourceFn func(path string) (*htmlcheck.Source, error)
}

func (r *SourceReader) ReadSource(path string) (*htmlcheck.Source, error) {
	return r.ReadSourceFn(path)
}
