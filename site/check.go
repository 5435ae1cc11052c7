package site

import (
	"slices"

	"github.com/DeedleFake/folio/placeholder"
)

// boundKeys lists the placeholders that a build fills in for each
// template. Static pages are inserted as is, so nothing in them is
// ever replaced.
var boundKeys = map[string][]string{
	TemplateBase:        {"title", "description", "content", "year"},
	TemplateHome:        {"posts"},
	TemplateBlog:        {"posts"},
	TemplatePost:        {"title", "date", "formattedDate", "content"},
	TemplateAbout:       nil,
	TemplateExperiments: nil,
}

// Unbound is a placeholder in a template that no build will replace.
// It shows up in the output verbatim.
type Unbound struct {
	Template string
	Key      string
}

// Unbound loads every required template and reports the placeholders
// in them that a build leaves alone.
func (t *Templates) Unbound() ([]Unbound, error) {
	var unbound []Unbound
	for _, name := range RequiredTemplates {
		tmpl, err := t.Load(name)
		if err != nil {
			return nil, err
		}

		for _, key := range placeholder.Keys(tmpl) {
			if !slices.Contains(boundKeys[name], key) {
				unbound = append(unbound, Unbound{Template: name, Key: key})
			}
		}
	}

	return unbound, nil
}
