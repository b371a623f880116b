package mock

import "github.com/fwojciec/htmlcheck"

var _ htmlcheck.Document = (*Document)(nil)

// Document is a mock implementation of htmlcheck.Document.
type Document struct {
	CountMatchesFn func(selector string) (int, error)
}

func (d *Document) CountMatches(selector string) (int, error) {
	return d.CountMatchesFn(selector)
}

var _ htmlcheck.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of htmlcheck.DocumentParser.
type DocumentParser struct {
	ParseFn func(src *htmlcheck.Source) (htmlcheck.Document, error)
}

func (p *DocumentParser) Parse(src *htmlcheck.Source) (htmlcheck.Document, error) {
	return p.ParseFn(src)
}
