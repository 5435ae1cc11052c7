// Package frontmatter separates a metadata block from the body of a
// content file.
package frontmatter

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// A Parser splits src into its metadata and the remaining body. A
// document without front matter yields empty, non-nil metadata and
// the whole input as the body.
type Parser interface {
	Parse(src []byte) (meta map[string]any, body []byte, err error)
}

// yamlFormat is the usual `---` delimited block, decoded with
// yaml.v3 rather than the yaml.v2 default of the frontmatter package.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// YAML parses `---` delimited YAML front matter.
type YAML struct{}

func (YAML) Parse(src []byte) (map[string]any, []byte, error) {
	meta := make(map[string]any)
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta, yamlFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("parse front matter: %w", err)
	}
	if meta == nil {
		meta = make(map[string]any)
	}

	return meta, body, nil
}
