package site

import (
	"strconv"
	"time"

	"github.com/DeedleFake/folio/placeholder"
)

// Composer wraps page bodies in the base layout.
type Composer struct {
	templates *Templates
	now       func() time.Time
}

func NewComposer(templates *Templates, opts ...Option) *Composer {
	o := newOptions(opts)
	return &Composer{
		templates: templates,
		now:       o.now,
	}
}

// Compose renders the base template with data plus two keys that
// data can't override: content, set to body, and year, the current
// calendar year.
func (c *Composer) Compose(body string, data placeholder.Data) (string, error) {
	base, err := c.templates.Load(TemplateBase)
	if err != nil {
		return "", err
	}

	return placeholder.Render(base, placeholder.Merge(data, placeholder.Data{
		"content": body,
		"year":    strconv.Itoa(c.now().Year()),
	})), nil
}
