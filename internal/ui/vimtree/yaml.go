package vimtree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a forest from a YAML document, keeping key order.
// Mapping keys become nodes; nested mappings and sequences become their
// children and scalar values become the node Data.
func FromYAML(data []byte) ([]*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing tree: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return nodesFrom(doc.Content[0]), nil
}

func nodesFrom(y *yaml.Node) []*Node {
	switch y.Kind {
	case yaml.AliasNode:
		return nodesFrom(y.Alias)
	case yaml.MappingNode:
		out := make([]*Node, 0, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			k, v := y.Content[i], y.Content[i+1]
			n := NewNode(k.Value)
			switch v.Kind {
			case yaml.MappingNode, yaml.SequenceNode, yaml.AliasNode:
				for _, c := range nodesFrom(v) {
					n.attach(len(n.children), c)
				}
			case yaml.ScalarNode:
				if v.Tag != "!!null" {
					n.Data = v.Value
				}
			}
			out = append(out, n)
		}
		return out
	case yaml.SequenceNode:
		var out []*Node
		for _, item := range y.Content {
			out = append(out, nodesFrom(item)...)
		}
		return out
	case yaml.ScalarNode:
		return []*Node{NewNode(y.Value)}
	default:
		return nil
	}
}
