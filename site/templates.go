package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Names of the templates that a build renders.
const (
	TemplateBase        = "base"
	TemplateHome        = "home"
	TemplateBlog        = "blog"
	TemplatePost        = "post"
	TemplateAbout       = "about"
	TemplateExperiments = "experiments"
)

// RequiredTemplates lists every template that must exist for a build
// to succeed.
var RequiredTemplates = []string{
	TemplateBase,
	TemplateHome,
	TemplateBlog,
	TemplatePost,
	TemplateAbout,
	TemplateExperiments,
}

// ErrMissingTemplate is wrapped by errors for templates that don't
// exist.
var ErrMissingTemplate = errors.New("missing template")

// Templates reads named HTML templates from a directory. Templates
// are read from disk every time that they're loaded.
type Templates struct {
	dir string
}

func NewTemplates(dir string) *Templates {
	return &Templates{dir: dir}
}

// Path returns the file that the named template is read from.
func (t *Templates) Path(name string) string {
	return filepath.Join(t.dir, name+".html")
}

// Load returns the contents of the named template.
func (t *Templates) Load(name string) (string, error) {
	data, err := os.ReadFile(t.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w %q: %w", ErrMissingTemplate, name, err)
		}
		return "", fmt.Errorf("read template %q: %w", name, err)
	}

	return string(data), nil
}

// Check makes sure that each named template can be read, reporting
// all of the failures at once.
func (t *Templates) Check(names ...string) error {
	var errs []error
	for _, name := range names {
		f, err := os.Open(t.Path(name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				err = fmt.Errorf("%w %q: %w", ErrMissingTemplate, name, err)
			}
			errs = append(errs, err)
			continue
		}
		f.Close()
	}

	return errors.Join(errs...)
}
