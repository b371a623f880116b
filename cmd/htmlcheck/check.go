package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/htmlcheck"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Selectors htmlcheck.SelectorLoader
	Sources   htmlcheck.SourceReader
	Parser    htmlcheck.DocumentParser

	// Fetcher is only set when a URL is being checked.
	Fetcher htmlcheck.Fetcher
}

// CheckCmd checks one HTML document against a selector list.
type CheckCmd struct {
	Checks string
	File   string
	URL    string
}

// Run loads the selectors, acquires and parses the document, and prints
// the presence report as JSON indented with four spaces. Nothing is
// written to stdout when any step fails.
func (c *CheckCmd) Run(deps *Dependencies) error {
	selectors, err := deps.Selectors.LoadSelectors(c.Checks)
	if err != nil {
		return err
	}

	src, err := c.source(deps)
	if err != nil {
		return err
	}

	doc, err := deps.Parser.Parse(src)
	if err != nil {
		return err
	}

	report, err := htmlcheck.Evaluate(doc, selectors)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(report)
}

// source fetches the URL when one is set, and reads the file otherwise.
func (c *CheckCmd) source(deps *Dependencies) (*htmlcheck.Source, error) {
	if c.URL != "" {
		if deps.Fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured for %s", c.URL)
		}
		return deps.Fetcher.Fetch(deps.Ctx, c.URL)
	}
	return deps.Sources.ReadSource(c.File)
}
