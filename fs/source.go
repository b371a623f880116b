// Package fs reads HTML documents and selector lists from the local filesystem.
package fs

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/htmlcheck"
)

// Ensure SourceReader implements htmlcheck.SourceReader at compile time.
var _ htmlcheck.SourceReader = (*SourceReader)(nil)

// SourceReader reads HTML files from disk.
type SourceReader struct{}

// NewSourceReader creates a new SourceReader.
func NewSourceReader() *SourceReader {
	return &SourceReader{}
}

// ReadSource reads the file at path. The content type is left empty so the
// parser sniffs the encoding from the document itself.
func (r *SourceReader) ReadSource(path string) (*htmlcheck.Source, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return &htmlcheck.Source{Location: path, Body: data}, nil
}

// readFile reads a regular file, mapping a missing path to ENOTFOUND and a
// directory to EINVALID.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, htmlcheck.Errorf(htmlcheck.ENOTFOUND, "%s does not exist", path)
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
