package site

import (
	"log/slog"
	"time"
)

// Page holds the site-level title and description handed to the base
// layout for one of the fixed pages.
type Page struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

// Config locates the inputs and output of a build and carries the
// site-wide strings that end up in the base layout.
type Config struct {
	ContentDir   string `mapstructure:"content_dir"`
	TemplatesDir string `mapstructure:"templates_dir"`
	StylesDir    string `mapstructure:"styles_dir"`
	PublicDir    string `mapstructure:"public_dir"`
	OutputDir    string `mapstructure:"output_dir"`

	// RecentPosts is the number of cards shown on the home page.
	RecentPosts int `mapstructure:"recent_posts"`

	// Name is appended to post titles as "<title> - <Name>".
	Name        string `mapstructure:"name"`
	Home        Page   `mapstructure:"home"`
	Blog        Page   `mapstructure:"blog"`
	About       Page   `mapstructure:"about"`
	Experiments Page   `mapstructure:"experiments"`
}

// DefaultConfig returns the layout of a project created by folio
// init, relative to the working directory.
func DefaultConfig() Config {
	return Config{
		ContentDir:   "content/posts",
		TemplatesDir: "src/templates",
		StylesDir:    "src/styles",
		PublicDir:    "public",
		OutputDir:    "dist",

		RecentPosts: 3,

		Name: "Mohanad Elhag",
		Home: Page{
			Title:       "Mohanad Elhag - Frontend Engineer",
			Description: "Personal blog and portfolio of a frontend engineer rebuilding fundamentals.",
		},
		Blog: Page{
			Title:       "Blog - Mohanad Elhag",
			Description: "Blog posts about frontend development and learning.",
		},
		About: Page{
			Title:       "About - Mohanad Elhag",
			Description: "About me - a frontend engineer rebuilding fundamentals.",
		},
		Experiments: Page{
			Title:       "Experiments - Mohanad Elhag",
			Description: "Web experiments and demos.",
		},
	}
}

type options struct {
	log *slog.Logger
	now func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		log: slog.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// An Option configures a Repository, Composer or Builder.
type Option func(*options)

// WithLogger sets the logger used for progress messages.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithNow replaces the clock used for default post dates and the
// footer year.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
