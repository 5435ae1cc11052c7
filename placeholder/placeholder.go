// Package placeholder implements the flat {{name}} substitution used
// by folio's HTML templates.
//
// There are no loops, conditionals or escaping. A placeholder whose
// name isn't in the data is left exactly as it was written, and
// substituted values are never scanned again, so a value may safely
// contain text that looks like a placeholder.
package placeholder

import (
	"regexp"
	"strings"
)

// Data maps placeholder names to their replacement text.
type Data map[string]string

var placeholderRE = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Render replaces every placeholder in tmpl that has a key in data
// with that key's value.
func Render(tmpl string, data Data) string {
	matches := placeholderRE.FindAllStringSubmatchIndex(tmpl, -1)
	if len(matches) == 0 {
		return tmpl
	}

	var sb strings.Builder
	sb.Grow(len(tmpl))

	last := 0
	for _, m := range matches {
		val, ok := data[tmpl[m[2]:m[3]]]
		if !ok {
			continue
		}

		sb.WriteString(tmpl[last:m[0]])
		sb.WriteString(val)
		last = m[1]
	}
	sb.WriteString(tmpl[last:])

	return sb.String()
}

// Keys returns the distinct placeholder names used in tmpl in the
// order that they first appear.
func Keys(tmpl string) []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, m := range placeholderRE.FindAllStringSubmatch(tmpl, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		keys = append(keys, m[1])
	}
	return keys
}

// Merge returns a new Data containing the entries of each argument.
// Later arguments override earlier ones.
func Merge(data ...Data) Data {
	n := 0
	for _, d := range data {
		n += len(d)
	}

	out := make(Data, n)
	for _, d := range data {
		for k, v := range d {
			out[k] = v
		}
	}
	return out
}
