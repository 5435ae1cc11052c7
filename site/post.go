package site

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/DeedleFake/folio/frontmatter"
	"github.com/DeedleFake/folio/markdown"
	"github.com/gosimple/slug"
)

// Post is a single article loaded from the content directory. Every
// field is set once loading succeeds.
type Post struct {
	Title       string
	Date        string
	Description string
	Slug        string

	// Content is the HTML converted from the Markdown body.
	Content string
}

// defaultMeta provides values for front matter fields that were left
// out or empty.
var defaultMeta = map[string]func(file string, now time.Time) string{
	"title": func(string, time.Time) string {
		return "Untitled"
	},

	"date": func(_ string, now time.Time) string {
		return now.UTC().Format(time.DateOnly)
	},

	"description": func(string, time.Time) string {
		return ""
	},

	"slug": func(file string, _ time.Time) string {
		return removeExt(file)
	},
}

// removeExt removes the final extension from the path provided.
func removeExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Repository loads the posts in a content directory.
type Repository struct {
	dir    string
	parser frontmatter.Parser
	conv   markdown.Converter
	log    *slog.Logger
	now    func() time.Time
}

// NewRepository returns a Repository that reads Markdown files from
// dir.
func NewRepository(dir string, parser frontmatter.Parser, conv markdown.Converter, opts ...Option) *Repository {
	o := newOptions(opts)
	return &Repository{
		dir:    dir,
		parser: parser,
		conv:   conv,
		log:    o.log,
		now:    o.now,
	}
}

// Posts loads every .md file in the repository's directory, newest
// first. Posts with the same date are ordered by slug and posts whose
// date can't be parsed come last.
//
// A missing directory is not an error and yields no posts. Any file
// that fails to load fails the whole call.
func (r *Repository) Posts() ([]Post, error) {
	_, err := os.Stat(r.dir)
	if errors.Is(err, fs.ErrNotExist) {
		r.log.Info("No content directory found, using empty posts list", "dir", r.dir)
		return []Post{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat content directory: %w", err)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read content directory: %w", err)
	}

	now := r.now()
	posts := make([]datedPost, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		post, err := r.load(entry.Name(), now)
		if err != nil {
			return nil, fmt.Errorf("load %q: %w", entry.Name(), err)
		}

		t, ok := ParseDate(post.Date)
		posts = append(posts, datedPost{Post: post, t: t, ok: ok})
	}

	slices.SortStableFunc(posts, compareDated)

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Post)
	}
	return out, nil
}

func (r *Repository) load(file string, now time.Time) (Post, error) {
	src, err := os.ReadFile(filepath.Join(r.dir, file))
	if err != nil {
		return Post{}, err
	}

	meta, body, err := r.parser.Parse(src)
	if err != nil {
		return Post{}, err
	}

	fields := make(map[string]string, len(defaultMeta))
	for k, f := range defaultMeta {
		v := metaString(meta[k])
		if v == "" {
			v = f(file, now)
		}
		fields[k] = v
	}

	content, err := r.conv.Convert(body)
	if err != nil {
		return Post{}, err
	}

	return Post{
		Title:       fields["title"],
		Date:        fields["date"],
		Description: fields["description"],
		Slug:        r.safeSlug(fields["slug"], file),
		Content:     content,
	}, nil
}

// safeSlug makes sure that s can't address anything outside of its
// own directory under blog/.
func (r *Repository) safeSlug(s, file string) string {
	if !strings.ContainsAny(s, `/\`) && (s != ".") && (s != "..") {
		return s
	}

	clean := slug.Make(s)
	if clean == "" {
		clean = slug.Make(removeExt(file))
	}
	r.log.Warn("Unsafe slug replaced", "file", file, "slug", s, "replacement", clean)
	return clean
}

// metaString converts a decoded front matter value to the string
// stored in a Post.
func metaString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}

type datedPost struct {
	Post
	t  time.Time
	ok bool
}

func compareDated(a, b datedPost) int {
	if a.ok != b.ok {
		if a.ok {
			return -1
		}
		return 1
	}

	if c := b.t.Compare(a.t); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}
