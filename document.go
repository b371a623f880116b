package htmlcheck

// Source is raw HTML as read from disk or fetched from a URL, prior to parsing.
type Source struct {
	// Location is the file path or final URL the HTML came from.
	Location string

	// ContentType is the HTTP Content-Type header value.
	// Empty for local files; the parser then sniffs the encoding.
	ContentType string

	// Body holds the undecoded bytes.
	Body []byte
}

// Document is a parsed, queryable HTML tree.
// Implementations must be safe for concurrent reads.
type Document interface {
	// CountMatches returns the number of elements matching the CSS selector.
	// Returns ESYNTAX if the selector cannot be parsed.
	CountMatches(selector string) (int, error)
}

// DocumentParser turns raw HTML into a queryable Document.
type DocumentParser interface {
	Parse(src *Source) (Document, error)
}

// SourceReader reads HTML from the local filesystem.
type SourceReader interface {
	// ReadSource returns ENOTFOUND if the path does not exist.
	ReadSource(path string) (*Source, error)
}

// SelectorLoader loads a list of CSS selectors.
type SelectorLoader interface {
	// LoadSelectors returns ENOTFOUND if the path does not exist and EPARSE
	// if the content is not a list of strings.
	LoadSelectors(path string) ([]string, error)
}
