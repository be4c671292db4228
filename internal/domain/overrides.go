package domain

import (
	"fmt"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// BuildOverrides maps build names to their simc directives and iterates in
// insertion order. Job names and job order are derived from that order.
type BuildOverrides struct {
	names      []string
	directives map[string][]string
}

// NewBuildOverrides returns an empty set ready for Set.
func NewBuildOverrides() *BuildOverrides {
	return &BuildOverrides{directives: make(map[string][]string)}
}

// Set adds a build at the end, or replaces the directives of an existing
// build without moving it.
func (o *BuildOverrides) Set(name string, directives []string) {
	if o.directives == nil {
		o.directives = make(map[string][]string)
	}
	if _, ok := o.directives[name]; !ok {
		o.names = append(o.names, name)
	}
	o.directives[name] = slices.Clone(directives)
}

// Len is the number of builds.
func (o *BuildOverrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.names)
}

// Names returns the build names in insertion order.
func (o *BuildOverrides) Names() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.names)
}

// All yields build names and directives in insertion order.
func (o *BuildOverrides) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if o == nil {
			return
		}
		for _, name := range o.names {
			if !yield(name, slices.Clone(o.directives[name])) {
				return
			}
		}
	}
}

// UnmarshalYAML accepts null (empty map) or a mapping of build name to a
// sequence of directive strings. Mapping order is preserved.
func (o *BuildOverrides) UnmarshalYAML(value *yaml.Node) error {
	out := NewBuildOverrides()
	switch {
	case value == nil:
	case value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null":
	case value.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: build name must be a string", k.Line)
			}
			if _, dup := out.directives[k.Value]; dup {
				return fmt.Errorf("line %d: duplicate build %q", k.Line, k.Value)
			}
			if v.Kind != yaml.SequenceNode {
				return fmt.Errorf("line %d: build %q: expected a sequence of directives", v.Line, k.Value)
			}
			var directives []string
			if err := v.Decode(&directives); err != nil {
				return fmt.Errorf("build %q: %w", k.Value, err)
			}
			out.Set(k.Value, directives)
		}
	default:
		return fmt.Errorf("line %d: expected a mapping of build name to directives", value.Line)
	}
	*o = *out
	return nil
}
