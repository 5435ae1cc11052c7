// Package config resolves folio's settings from defaults, an optional
// folio.yaml and FOLIO_* environment variables, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DeedleFake/folio/markdown"
	"github.com/DeedleFake/folio/site"
	"github.com/spf13/viper"
)

// FileName is the base name of the configuration file looked for in
// the working directory.
const FileName = "folio"

// Config is the fully resolved configuration.
type Config struct {
	Site     site.Config
	Markdown string
	Serve    Serve
}

// Serve configures the development server.
type Serve struct {
	Addr     string
	Debounce time.Duration
}

// ConfigOption describes a single configuration key.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns every configuration key with its default
// and a short description. It's the only place defaults are defined.
func GetConfigOptions() []ConfigOption {
	d := site.DefaultConfig()
	return []ConfigOption{
		{Key: "content_dir", Default: d.ContentDir, Comment: "Directory containing Markdown posts"},
		{Key: "templates_dir", Default: d.TemplatesDir, Comment: "Directory containing the HTML templates"},
		{Key: "styles_dir", Default: d.StylesDir, Comment: "Copied to <output_dir>/styles"},
		{Key: "public_dir", Default: d.PublicDir, Comment: "Contents copied to the output root if it exists"},
		{Key: "output_dir", Default: d.OutputDir, Comment: "Recreated from scratch by every build"},
		{Key: "recent_posts", Default: d.RecentPosts, Comment: "Number of posts shown on the home page"},
		{Key: "markdown", Default: "blackfriday", Comment: "Markdown engine: " + strings.Join(markdown.Engines(), ", ")},

		{Key: "site.name", Default: d.Name, Comment: "Appended to post page titles"},
		{Key: "site.home.title", Default: d.Home.Title},
		{Key: "site.home.description", Default: d.Home.Description},
		{Key: "site.blog.title", Default: d.Blog.Title},
		{Key: "site.blog.description", Default: d.Blog.Description},
		{Key: "site.about.title", Default: d.About.Title},
		{Key: "site.about.description", Default: d.About.Description},
		{Key: "site.experiments.title", Default: d.Experiments.Title},
		{Key: "site.experiments.description", Default: d.Experiments.Description},

		{Key: "serve.addr", Default: ":3000", Comment: "Listen address of folio serve"},
		{Key: "serve.debounce", Default: "300ms", Comment: "Quiet period before a change triggers a rebuild"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load fills v from the configuration sources and resolves it. If
// v has no config file set, folio.yaml in the working directory is
// used when it exists.
func Load(v *viper.Viper) (Config, error) {
	applyDefaults(v)

	v.SetEnvPrefix("folio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Site: site.Config{
			ContentDir:   v.GetString("content_dir"),
			TemplatesDir: v.GetString("templates_dir"),
			StylesDir:    v.GetString("styles_dir"),
			PublicDir:    v.GetString("public_dir"),
			OutputDir:    v.GetString("output_dir"),
			RecentPosts:  v.GetInt("recent_posts"),
			Name:         v.GetString("site.name"),
			Home:         page(v, "home"),
			Blog:         page(v, "blog"),
			About:        page(v, "about"),
			Experiments:  page(v, "experiments"),
		},
		Markdown: v.GetString("markdown"),
		Serve: Serve{
			Addr:     v.GetString("serve.addr"),
			Debounce: v.GetDuration("serve.debounce"),
		},
	}

	return cfg, Validate(cfg)
}

func page(v *viper.Viper, name string) site.Page {
	return site.Page{
		Title:       v.GetString("site." + name + ".title"),
		Description: v.GetString("site." + name + ".description"),
	}
}

// Validate reports every problem with cfg at once.
func Validate(cfg Config) error {
	var errs []error
	required := []struct {
		key, val string
	}{
		{"content_dir", cfg.Site.ContentDir},
		{"templates_dir", cfg.Site.TemplatesDir},
		{"styles_dir", cfg.Site.StylesDir},
		{"output_dir", cfg.Site.OutputDir},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			errs = append(errs, fmt.Errorf("%v is required", r.key))
		}
	}

	if cfg.Site.RecentPosts < 0 {
		errs = append(errs, errors.New("recent_posts must not be negative"))
	}
	if _, err := markdown.New(cfg.Markdown); err != nil {
		errs = append(errs, err)
	}
	if cfg.Serve.Debounce < 0 {
		errs = append(errs, errors.New("serve.debounce must not be negative"))
	}

	return errors.Join(errs...)
}
