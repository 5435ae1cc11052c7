package config

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// RenderDefaultYAML renders a commented folio.yaml containing every
// option at its default value.
func RenderDefaultYAML() (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, o := range GetConfigOptions() {
		parent := root
		keys := strings.Split(o.Key, ".")
		for _, k := range keys[:len(keys)-1] {
			parent = child(parent, k)
		}

		var val yaml.Node
		err := val.Encode(o.Default)
		if err != nil {
			return "", fmt.Errorf("encode %v: %w", o.Key, err)
		}

		key := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       keys[len(keys)-1],
			HeadComment: o.Comment,
		}
		parent.Content = append(parent.Content, key, &val)
	}

	var buf bytes.Buffer
	buf.WriteString("# folio configuration\n\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}})
	if err != nil {
		return "", err
	}
	err = enc.Close()
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// child returns the mapping stored under key in m, adding it if it's
// not there yet.
func child(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}

	c := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, c)
	return c
}
