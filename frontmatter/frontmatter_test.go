package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYAML_SplitsMetadataAndBody(t *testing.T) {
	src := "---\ntitle: Hello\ndate: 2025-01-17\ntags:\n  - one\n---\n# Heading\n\nBody text.\n"

	meta, body, err := YAML{}.Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, "Hello", meta["title"])
	require.Equal(t, "2025-01-17", meta["date"], "unquoted dates stay strings")
	require.Equal(t, []any{"one"}, meta["tags"])
	require.Equal(t, "# Heading\n\nBody text.", strings.TrimSpace(string(body)))
}

func TestYAML_NoFrontMatter_ReturnsWholeInput(t *testing.T) {
	src := "# Just Markdown\n\nNo metadata here.\n"

	meta, body, err := YAML{}.Parse([]byte(src))
	require.NoError(t, err)
	require.NotNil(t, meta)
	require.Empty(t, meta)
	require.Equal(t, src, string(body))
}

func TestYAML_MalformedFrontMatter_Fails(t *testing.T) {
	src := "---\ntitle: [unclosed\n---\nbody\n"

	_, _, err := YAML{}.Parse([]byte(src))
	require.ErrorContains(t, err, "parse front matter")
}

func TestYAML_NonStringValuesKeepTheirType(t *testing.T) {
	src := "---\ntitle: 42\ndraft: true\n---\nbody\n"

	meta, _, err := YAML{}.Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, 42, meta["title"])
	require.Equal(t, true, meta["draft"])
}
