package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts a dotted string or a sequence of strings.
func (s *Segments) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*s = splitSegments(str)

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected namespace string or list, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the sequence form.
func (s Segments) MarshalYAML() (any, error) {
	return []string(s), nil
}

// String joins segments with dots.
func (s Segments) String() string {
	return strings.Join(s, ".")
}

func splitSegments(str string) Segments {
	if strings.TrimSpace(str) == "" {
		return Segments{}
	}

	parts := strings.Split(str, ".")
	out := make(Segments, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// UnmarshalYAML keeps any scalar as-is; null becomes nil.
func (m *ManyValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: many must be a scalar (true, false, ordered or unordered), got %v",
			node.Line, node.Kind)
	}

	if node.Tag == "!!null" {
		m.Value = nil
		return nil
	}

	var v any

	err := node.Decode(&v)
	if err != nil {
		return err
	}

	m.Value = v

	return nil
}

// MarshalYAML writes the raw value back.
func (m ManyValue) MarshalYAML() (any, error) {
	return m.Value, nil
}
