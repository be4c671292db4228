package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CharacterProfile is the base simc profile the batch is built around.
// Raw holds the whole document (character block, items, anything else) and is
// passed to the simulator unchanged. Only the character block is ever read.
type CharacterProfile struct {
	Raw map[string]any
}

func (p CharacterProfile) IsEmpty() bool {
	return len(p.Raw) == 0
}

// Character returns the character block, or nil if there is none.
func (p CharacterProfile) Character() map[string]any {
	c, _ := p.Raw["character"].(map[string]any)
	return c
}

// Clone returns a deep copy, so jobs never share nested maps with the input.
func (p CharacterProfile) Clone() CharacterProfile {
	if p.Raw == nil {
		return CharacterProfile{}
	}
	return CharacterProfile{Raw: cloneTree(p.Raw).(map[string]any)}
}

func cloneTree(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneTree(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneTree(e)
		}
		return out
	default:
		return v
	}
}

func (p *CharacterProfile) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	p.Raw = raw
	return nil
}

func (p CharacterProfile) MarshalJSON() ([]byte, error) {
	if p.Raw == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.Raw)
}

func (p *CharacterProfile) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		raw = nil
	}
	p.Raw = raw
	return nil
}

// Talents resolves the talent fields of the character block. A combined
// talents string always wins over separate class/spec strings.
func (p CharacterProfile) Talents() Talents {
	c := p.Character()
	if t, ok := scalar(c, "talents"); ok {
		return CombinedTalents{Value: t}
	}
	classTalents, okClass := scalar(c, "class_talents")
	specTalents, okSpec := scalar(c, "spec_talents")
	if okClass && okSpec {
		return SplitTalents{Class: classTalents, Spec: specTalents}
	}
	return NoTalents{}
}

// scalar reads key as text. Nested values do not count as present.
func scalar(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(t), true
	}
}

// Talents is one of NoTalents, CombinedTalents or SplitTalents.
type Talents interface {
	// Directives returns the build directives reproducing these talents.
	// It is nil for NoTalents.
	Directives() []string
}

type NoTalents struct{}

func (NoTalents) Directives() []string { return nil }

// CombinedTalents is a full talent string, used as a directive verbatim.
type CombinedTalents struct {
	Value string
}

func (t CombinedTalents) Directives() []string {
	return []string{t.Value}
}

type SplitTalents struct {
	Class string
	Spec  string
}

func (t SplitTalents) Directives() []string {
	return []string{"class_talents=" + t.Class, "spec_talents=" + t.Spec}
}
