package fs

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlcheck"
	"gopkg.in/yaml.v3"
)

// Ensure SelectorLoader implements htmlcheck.SelectorLoader at compile time.
var _ htmlcheck.SelectorLoader = (*SelectorLoader)(nil)

// SelectorLoader reads selector lists from JSON files, or YAML files when
// the extension is .yaml or .yml.
type SelectorLoader struct{}

// NewSelectorLoader creates a new SelectorLoader.
func NewSelectorLoader() *SelectorLoader {
	return &SelectorLoader{}
}

// LoadSelectors returns the selectors in file order.
func (l *SelectorLoader) LoadSelectors(path string) ([]string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var selectors []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &selectors)
	default:
		err = json.Unmarshal(data, &selectors)
	}
	if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "%s: expected a list of selector strings: %v", path, err)
	}

	// null and empty YAML documents decode without error.
	if selectors == nil {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "%s: expected a list of selector strings", path)
	}
	return selectors, nil
}
