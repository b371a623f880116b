package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with content in a fresh temp directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSourceReader_ReadSource(t *testing.T) {
	t.Parallel()

	t.Run("reads file bytes", func(t *testing.T) {
		t.Parallel()

		// Given an HTML file on disk
		path := writeFile(t, "index.html", "<h1>CS50</h1>")

		// When I read it
		src, err := fs.NewSourceReader().ReadSource(path)

		// Then the body and location are returned with no content type
		require.NoError(t, err)
		assert.Equal(t, path, src.Location)
		assert.Equal(t, []byte("<h1>CS50</h1>"), src.Body)
		assert.Empty(t, src.ContentType)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")

		_, err := fs.NewSourceReader().ReadSource(path)

		require.Error(t, err)
		assert.Equal(t, htmlcheck.ENOTFOUND, htmlcheck.ErrorCode(err))
		assert.Equal(t, path+" does not exist", htmlcheck.ErrorMessage(err))
	})

	t.Run("returns EINVALID for directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSourceReader().ReadSource(t.TempDir())

		require.Error(t, err)
		assert.Equal(t, htmlcheck.EINVALID, htmlcheck.ErrorCode(err))
	})
}
