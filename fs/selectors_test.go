package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorLoader_LoadSelectors(t *testing.T) {
	t.Parallel()

	t.Run("loads JSON array in file order", func(t *testing.T) {
		t.Parallel()

		// Given a checks file with unsorted selectors
		path := writeFile(t, "checks.json", `["p.text", "h1", "#missing", "h1"]`)

		// When I load it
		selectors, err := fs.NewSelectorLoader().LoadSelectors(path)

		// Then the selectors come back untouched
		require.NoError(t, err)
		assert.Equal(t, []string{"p.text", "h1", "#missing", "h1"}, selectors)
	})

	t.Run("loads empty JSON array", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "checks.json", `[]`)

		selectors, err := fs.NewSelectorLoader().LoadSelectors(path)

		require.NoError(t, err)
		assert.Empty(t, selectors)
	})

	t.Run("loads YAML sequence", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "checks.yaml", "- h1\n- \"#header\"\n- div.container\n")

		selectors, err := fs.NewSelectorLoader().LoadSelectors(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"h1", "#header", "div.container"}, selectors)
	})

	t.Run("treats unknown extensions as JSON", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "checks.txt", `["h1"]`)

		selectors, err := fs.NewSelectorLoader().LoadSelectors(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"h1"}, selectors)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "checks.json")

		_, err := fs.NewSelectorLoader().LoadSelectors(path)

		require.Error(t, err)
		assert.Equal(t, htmlcheck.ENOTFOUND, htmlcheck.ErrorCode(err))
		assert.Contains(t, htmlcheck.ErrorMessage(err), "does not exist")
	})

	t.Run("returns EPARSE for content that is not a list of strings", func(t *testing.T) {
		t.Parallel()

		tests := map[string]string{
			"object":        `{"h1": true}`,
			"numbers":       `[1, 2]`,
			"mixed":         `["h1", 2]`,
			"null":          `null`,
			"string":        `"h1"`,
			"syntax error":  `["h1",`,
			"empty file":    ``,
			"trailing data": `["h1"] ["p"]`,
		}
		for name, content := range tests {
			path := writeFile(t, "checks.json", content)

			_, err := fs.NewSelectorLoader().LoadSelectors(path)

			require.Error(t, err, name)
			assert.Equal(t, htmlcheck.EPARSE, htmlcheck.ErrorCode(err), name)
		}
	})

	t.Run("returns EPARSE for YAML mapping", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "checks.yml", "h1: true\n")

		_, err := fs.NewSelectorLoader().LoadSelectors(path)

		require.Error(t, err)
		assert.Equal(t, htmlcheck.EPARSE, htmlcheck.ErrorCode(err))
	})

	t.Run("returns EPARSE for empty YAML document", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "checks.yaml", "")

		_, err := fs.NewSelectorLoader().LoadSelectors(path)

		require.Error(t, err)
		assert.Equal(t, htmlcheck.EPARSE, htmlcheck.ErrorCode(err))
	})
}
