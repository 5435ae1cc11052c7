package site

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedNow is the clock used throughout the tests.
func fixedNow() time.Time {
	return time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
}

func testOptions() []Option {
	return []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithNow(fixedNow),
	}
}

// writeFiles creates each file in files under root.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// testConfig returns a Config rooted at dir.
func testConfig(dir string) Config {
	cfg := DefaultConfig()
	cfg.ContentDir = filepath.Join(dir, "content", "posts")
	cfg.TemplatesDir = filepath.Join(dir, "src", "templates")
	cfg.StylesDir = filepath.Join(dir, "src", "styles")
	cfg.PublicDir = filepath.Join(dir, "public")
	cfg.OutputDir = filepath.Join(dir, "dist")
	return cfg
}

// testTemplates are small templates that make the output easy to
// check.
var testTemplates = map[string]string{
	"src/templates/base.html":        `<html><head><title>{{title}}</title><meta name="description" content="{{description}}"></head><body>{{content}}<footer>{{year}}</footer></body></html>`,
	"src/templates/home.html":        `<ul id="recent">{{posts}}</ul>`,
	"src/templates/blog.html":        `<ul id="all">{{posts}}</ul>`,
	"src/templates/post.html":        `<article><h1>{{title}}</h1><time datetime="{{date}}">{{formattedDate}}</time>{{content}}</article>`,
	"src/templates/about.html":       `<h1>About</h1><p>{{title}}</p>`,
	"src/templates/experiments.html": `<h1>Experiments</h1>`,
	"src/styles/main.css":            `body { color: black; }`,
}

func readOutput(t *testing.T, cfg Config, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}
