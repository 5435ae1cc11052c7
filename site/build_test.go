package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DeedleFake/folio/frontmatter"
	"github.com/DeedleFake/folio/markdown"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func newTestBuilder(cfg Config) *Builder {
	return NewBuilder(cfg, frontmatter.YAML{}, markdown.Blackfriday{}, testOptions()...)
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeFiles(t, dir, testTemplates)
	writeFiles(t, dir, map[string]string{
		"content/posts/first.md":  "---\ntitle: First\ndate: 2025-01-17\ndescription: The first one.\n---\nHello *first*.\n",
		"content/posts/second.md": "---\ntitle: Second\ndate: 2025-03-05\n---\nHello second.\n",
		"content/posts/third.md":  "---\ntitle: Third\ndate: 2025-06-15\n---\nHello third.\n",
		"content/posts/fourth.md": "---\ntitle: Fourth\ndate: 2025-12-25\nslug: custom\n---\nHello fourth.\n",
		"public/favicon.ico":      "icon",
		"public/images/a.png":     "png",
		"src/styles/nested/x.css": "x",
	})

	res, err := newTestBuilder(cfg).Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, Result{Posts: 4, Pages: 8}, res)

	home := readOutput(t, cfg, "index.html")
	require.Contains(t, home, "<title>Mohanad Elhag - Frontend Engineer</title>")
	require.Contains(t, home, "<footer>2026</footer>")
	require.Equal(t, 3, strings.Count(home, `class="post-card"`))
	require.Contains(t, home, `<a href="/blog/custom/">Fourth</a>`)
	require.NotContains(t, home, `/blog/first/`)
	require.Less(t, strings.Index(home, "/blog/custom/"), strings.Index(home, "/blog/third/"))

	blog := readOutput(t, cfg, "blog/index.html")
	require.Contains(t, blog, "<title>Blog - Mohanad Elhag</title>")
	require.Equal(t, 4, strings.Count(blog, `class="post-card"`))
	require.Contains(t, blog, "The first one.")
	require.NotContains(t, blog, NoPosts)

	post := readOutput(t, cfg, "blog/first/index.html")
	require.Contains(t, post, "<title>First - Mohanad Elhag</title>")
	require.Contains(t, post, `content="The first one."`)
	require.Contains(t, post, `<time datetime="2025-01-17">January 17, 2025</time>`)
	require.Contains(t, post, "<em>first</em>")
	require.FileExists(t, filepath.Join(cfg.OutputDir, "blog", "custom", "index.html"))

	about := readOutput(t, cfg, "about/index.html")
	require.Contains(t, about, "<title>About - Mohanad Elhag</title>")
	require.Contains(t, about, "<p>{{title}}</p>", "static pages are passed through")

	experiments := readOutput(t, cfg, "experiments/index.html")
	require.Contains(t, experiments, "<title>Experiments - Mohanad Elhag</title>")
	require.Contains(t, experiments, "<h1>Experiments</h1>")

	require.Equal(t, "body { color: black; }", readOutput(t, cfg, "styles/main.css"))
	require.Equal(t, "x", readOutput(t, cfg, "styles/nested/x.css"))
	require.Equal(t, "icon", readOutput(t, cfg, "favicon.ico"))
	require.Equal(t, "png", readOutput(t, cfg, "images/a.png"))

	info, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	doc, err := html.Parse(strings.NewReader(home))
	require.NoError(t, err)
	require.Equal(t, []string{
		"post-card", "post-meta", "post-description",
		"post-card", "post-meta", "post-description",
		"post-card", "post-meta", "post-description",
	}, classes(doc))
}

func TestBuild_NoPosts(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeFiles(t, dir, testTemplates)

	res, err := newTestBuilder(cfg).Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, Result{Posts: 0, Pages: 4}, res)

	require.Contains(t, readOutput(t, cfg, "blog/index.html"), `<ul id="all">`+NoPosts+`</ul>`)
	require.Contains(t, readOutput(t, cfg, "index.html"), `<ul id="recent"></ul>`)
	require.NoDirExists(t, filepath.Join(cfg.OutputDir, "images"))
}

func TestBuild_CleansOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeFiles(t, dir, testTemplates)
	writeFiles(t, dir, map[string]string{"dist/stale/index.html": "old"})

	_, err := newTestBuilder(cfg).Build(context.Background())
	require.NoError(t, err)
	require.NoFileExists(t, filepath.Join(cfg.OutputDir, "stale", "index.html"))
}

func TestBuild_RecentPosts(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.RecentPosts = 1
	writeFiles(t, dir, testTemplates)
	for i := 1; i <= 3; i++ {
		writeFiles(t, dir, map[string]string{
			fmt.Sprintf("content/posts/p%v.md", i): fmt.Sprintf("---\ndate: 2025-01-0%v\n---\n", i),
		})
	}

	_, err := newTestBuilder(cfg).Build(context.Background())
	require.NoError(t, err)

	home := readOutput(t, cfg, "index.html")
	require.Equal(t, 1, strings.Count(home, `class="post-card"`))
	require.Contains(t, home, "/blog/p3/")
}

func TestBuild_MissingTemplate(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeFiles(t, dir, testTemplates)
	require.NoError(t, os.Remove(filepath.Join(cfg.TemplatesDir, "experiments.html")))
	writeFiles(t, dir, map[string]string{"dist/keep.txt": "kept"})

	_, err := newTestBuilder(cfg).Build(context.Background())
	require.ErrorIs(t, err, ErrMissingTemplate)
	require.ErrorContains(t, err, `"experiments"`)
	require.FileExists(t, filepath.Join(cfg.OutputDir, "keep.txt"), "output is untouched when templates are missing")
}

func TestBuild_MissingStyles(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.StylesDir = filepath.Join(dir, "no-styles")
	writeFiles(t, dir, testTemplates)

	_, err := newTestBuilder(cfg).Build(context.Background())
	require.ErrorContains(t, err, "copy styles")
}

func TestBuild_MalformedPostIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeFiles(t, dir, testTemplates)
	writeFiles(t, dir, map[string]string{
		"content/posts/bad.md": "---\ntitle: [oops\n---\n",
	})

	_, err := newTestBuilder(cfg).Build(context.Background())
	require.ErrorContains(t, err, "load posts")
	require.NoFileExists(t, filepath.Join(cfg.OutputDir, "index.html"))
}

func TestBuild_Canceled(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeFiles(t, dir, testTemplates)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestBuilder(cfg).Build(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	written, err := Scaffold(cfg, false)
	require.NoError(t, err)
	require.Len(t, written, len(RequiredTemplates)+2)

	unbound, err := NewTemplates(cfg.TemplatesDir).Unbound()
	require.NoError(t, err)
	require.Empty(t, unbound)

	custom := filepath.Join(cfg.TemplatesDir, "about.html")
	require.NoError(t, os.WriteFile(custom, []byte("mine"), 0o644))

	written, err = Scaffold(cfg, false)
	require.NoError(t, err)
	require.Empty(t, written)
	require.Equal(t, "mine", readFile(t, custom))

	written, err = Scaffold(cfg, true)
	require.NoError(t, err)
	require.Len(t, written, len(RequiredTemplates)+2)
	require.NotEqual(t, "mine", readFile(t, custom))

	res, err := newTestBuilder(cfg).Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Posts)
	require.Contains(t, readOutput(t, cfg, "blog/hello-world/index.html"), "January 17, 2025")
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
