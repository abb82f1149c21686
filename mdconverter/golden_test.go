package mdconverter

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var update = flag.Bool("update", false, "update golden files")

func TestGoldenFiles(t *testing.T) {
	fixtures := []string{
		"blocks/headings",
		"blocks/lists",
		"blocks/quote",
		"blocks/code",
		"inline/references",
		"inline/emphasis",
		"documents/tolkien",
	}

	conv := newTestConverter(t, Config{})

	for _, fixture := range fixtures {
		t.Run(fixture, func(t *testing.T) {
			mdPath := filepath.Join("testdata", filepath.FromSlash(fixture+".md"))
			htmlPath := filepath.Join("testdata", filepath.FromSlash(fixture+".html"))

			markdown, err := os.ReadFile(mdPath)
			require.NoError(t, err)

			result, err := conv.Convert(string(markdown))
			require.NoError(t, err)
			requireWellFormed(t, result.HTML)

			if *update {
				require.NoError(t, os.WriteFile(htmlPath, []byte(result.HTML+"\n"), 0o644))
				return
			}

			expected, err := os.ReadFile(htmlPath)
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSuffix(string(expected), "\n"), result.HTML)
		})
	}
}

// requireWellFormed checks that markup tokenizes cleanly with matching
// start and end tags.
func requireWellFormed(t testing.TB, markup string) {
	t.Helper()

	z := html.NewTokenizer(strings.NewReader(markup))
	var open []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			require.ErrorIs(t, z.Err(), io.EOF)
			require.Empty(t, open, "unclosed tags")
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) != "img" {
				open = append(open, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			require.NotEmpty(t, open)
			require.Equal(t, open[len(open)-1], string(name))
			open = open[:len(open)-1]
		}
	}
}
