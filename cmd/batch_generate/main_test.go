package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadURLs(t *testing.T) {
	input := `# physics
https://en.wikipedia.org/wiki/Albert_Einstein

  https://en.wikipedia.org/wiki/Marie_Curie
#https://en.wikipedia.org/wiki/Skipped
`
	urls, err := readURLs(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://en.wikipedia.org/wiki/Albert_Einstein",
		"https://en.wikipedia.org/wiki/Marie_Curie",
	}, urls)
}

func TestCollectURLs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://en.wikipedia.org/wiki/B\n"), 0o600))

	urls, err := collectURLs([]string{"https://en.wikipedia.org/wiki/A"}, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://en.wikipedia.org/wiki/A", "https://en.wikipedia.org/wiki/B"}, urls)

	urls, err = collectURLs([]string{"https://en.wikipedia.org/wiki/A"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://en.wikipedia.org/wiki/A"}, urls)

	_, err = collectURLs(nil, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
