// Package site turns a directory of Markdown posts and placeholder
// templates into a static website.
//
// A build always starts from an empty output directory and runs every
// step in order on the calling goroutine:
//
//	check templates -> clean output -> load posts -> home -> blog index -> each post
//	-> about -> experiments -> styles -> public assets
//
// The first error stops the build. Whatever was already written is
// left in place.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/DeedleFake/folio/frontmatter"
	"github.com/DeedleFake/folio/markdown"
	"github.com/DeedleFake/folio/placeholder"
)

// Result summarizes a finished build.
type Result struct {
	Posts int
	Pages int
}

// Builder produces the output tree described by a Config.
type Builder struct {
	cfg       Config
	posts     *Repository
	templates *Templates
	composer  *Composer
	log       *slog.Logger
}

// NewBuilder returns a Builder for cfg that parses posts with parser
// and converts their bodies with conv.
func NewBuilder(cfg Config, parser frontmatter.Parser, conv markdown.Converter, opts ...Option) *Builder {
	o := newOptions(opts)
	templates := NewTemplates(cfg.TemplatesDir)
	return &Builder{
		cfg:       cfg,
		posts:     NewRepository(cfg.ContentDir, parser, conv, opts...),
		templates: templates,
		composer:  NewComposer(templates, opts...),
		log:       o.log,
	}
}

// Build runs a full build. ctx is checked between steps.
func (b *Builder) Build(ctx context.Context) (res Result, err error) {
	b.log.Info("Building site", "output", b.cfg.OutputDir)

	err = b.templates.Check(RequiredTemplates...)
	if err != nil {
		return res, err
	}

	err = os.RemoveAll(b.cfg.OutputDir)
	if err != nil {
		return res, fmt.Errorf("clean output directory: %w", err)
	}
	err = os.MkdirAll(b.cfg.OutputDir, 0o755)
	if err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}

	posts, err := b.posts.Posts()
	if err != nil {
		return res, fmt.Errorf("load posts: %w", err)
	}
	res.Posts = len(posts)
	b.log.Info("Found posts", "count", len(posts))

	recent := posts[:min(len(posts), max(b.cfg.RecentPosts, 0))]
	allCards := PostCards(posts)
	if allCards == "" {
		allCards = NoPosts
	}

	pages := []struct {
		path     string
		template string
		data     placeholder.Data
		page     Page
	}{
		{"index.html", TemplateHome, placeholder.Data{"posts": PostCards(recent)}, b.cfg.Home},
		{"blog/index.html", TemplateBlog, placeholder.Data{"posts": allCards}, b.cfg.Blog},
	}
	for _, p := range pages {
		err = b.renderPage(ctx, p.path, p.template, p.data, p.page)
		if err != nil {
			return res, err
		}
		res.Pages++
	}

	for _, post := range posts {
		err = b.renderPage(
			ctx,
			path.Join("blog", post.Slug, "index.html"),
			TemplatePost,
			placeholder.Data{
				"title":         post.Title,
				"date":          post.Date,
				"formattedDate": FormatDate(post.Date),
				"content":       post.Content,
			},
			Page{
				Title:       post.Title + " - " + b.cfg.Name,
				Description: post.Description,
			},
		)
		if err != nil {
			return res, err
		}
		res.Pages++
	}

	statics := []struct {
		path     string
		template string
		page     Page
	}{
		{"about/index.html", TemplateAbout, b.cfg.About},
		{"experiments/index.html", TemplateExperiments, b.cfg.Experiments},
	}
	for _, p := range statics {
		err = b.renderPage(ctx, p.path, p.template, nil, p.page)
		if err != nil {
			return res, err
		}
		res.Pages++
	}

	err = b.copyAssets(ctx)
	if err != nil {
		return res, err
	}

	b.log.Info("Build complete", "output", b.cfg.OutputDir, "posts", res.Posts, "pages", res.Pages)
	return res, nil
}

// renderPage renders the named template with data, wraps it in the
// base layout and writes it to rel inside the output directory. A nil
// data passes the template through untouched.
func (b *Builder) renderPage(ctx context.Context, rel, name string, data placeholder.Data, page Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.log.Info("Building", "path", "/"+rel)

	tmpl, err := b.templates.Load(name)
	if err != nil {
		return err
	}

	body := tmpl
	if data != nil {
		body = placeholder.Render(tmpl, data)
	}

	html, err := b.composer.Compose(body, placeholder.Data{
		"title":       page.Title,
		"description": page.Description,
	})
	if err != nil {
		return err
	}

	return writeFile(filepath.Join(b.cfg.OutputDir, filepath.FromSlash(rel)), html)
}

func (b *Builder) copyAssets(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.log.Info("Copying", "path", "/styles/")
	err := copyDir(b.cfg.StylesDir, filepath.Join(b.cfg.OutputDir, "styles"))
	if err != nil {
		return fmt.Errorf("copy styles: %w", err)
	}

	if b.cfg.PublicDir == "" {
		return nil
	}
	_, err = os.Stat(b.cfg.PublicDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat public directory: %w", err)
	}

	b.log.Info("Copying", "path", "/public/")
	err = copyEntries(b.cfg.PublicDir, b.cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("copy public assets: %w", err)
	}

	return nil
}
