// Package goquery implements htmlcheck.DocumentParser on top of goquery,
// with CSS selectors compiled by cascadia.
package goquery

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/htmlcheck"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Ensure Parser implements htmlcheck.DocumentParser at compile time.
var _ htmlcheck.DocumentParser = (*Parser)(nil)

// Parser parses raw HTML into goquery documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes src to UTF-8 and parses it.
func (p *Parser) Parse(src *htmlcheck.Source) (htmlcheck.Document, error) {
	if src == nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "source required")
	}

	doc, err := goquery.NewDocumentFromReader(decode(src))
	if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "%s: failed to parse HTML: %v", src.Location, err)
	}

	return &Document{doc: doc}, nil
}

// decode returns a UTF-8 reader over the source body. A charset from the
// Content-Type or a byte order mark is authoritative. Otherwise a body that
// is valid UTF-8 is read as is, and anything else goes through the encoding
// sniffed from <meta> tags (windows-1252 when there is none).
func decode(src *htmlcheck.Source) io.Reader {
	r := bytes.NewReader(src.Body)

	enc, _, certain := charset.DetermineEncoding(src.Body, src.ContentType)
	if enc == encoding.Nop || (!certain && utf8.Valid(src.Body)) {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}

// Ensure Document implements htmlcheck.Document at compile time.
var _ htmlcheck.Document = (*Document)(nil)

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// CountMatches returns the number of elements matching selector.
//
// goquery's Find treats a selector it cannot compile as matching nothing,
// so the selector is compiled here first to surface syntax errors.
func (d *Document) CountMatches(selector string) (int, error) {
	if d == nil || d.doc == nil {
		return 0, htmlcheck.Errorf(htmlcheck.EINVALID, "document not parsed")
	}
	if strings.TrimSpace(selector) == "" {
		return 0, htmlcheck.Errorf(htmlcheck.ESYNTAX, "empty selector")
	}

	sel, err := cascadia.Compile(selector)
	if err != nil {
		return 0, htmlcheck.Errorf(htmlcheck.ESYNTAX, "invalid selector %q: %v", selector, err)
	}

	return d.doc.FindMatcher(sel).Length(), nil
}
