package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTargetError           = "0.1"
	DefaultProfileSplitCharacter = "+"
	DefaultTierSet               = "tier29"
	DefaultFightStyle            = "patchwerk"
)

// Config is the content of tier_set_config.yaml.
type Config struct {
	Settings RunSettings `yaml:"settings"`
	// DefinitionsPath optionally points to a directory holding
	// talent_tree_paths/<class>_<spec>.yaml files. When empty the bundled
	// definitions are used.
	DefinitionsPath string `yaml:"definitions_path"`
	// AuxiliaryPath is the directory custom_apl.txt and custom_fight_style.txt are read from.
	// Defaults to the app root.
	AuxiliaryPath string `yaml:"auxiliary_path"`
	OutputPath    string `yaml:"output_path"`
}

func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if err := rejectUnknownKeys(value, "config", "settings", "definitions_path", "auxiliary_path", "output_path"); err != nil {
		return err
	}
	type raw Config
	var tmp raw
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

// RunSettings are the execution parameters copied into every job.
type RunSettings struct {
	FightStyle string `yaml:"fight_style" env:"FIGHT_STYLE"`

	// TargetError maps a fight style to the simc target_error used for it.
	TargetError      map[string]string `yaml:"target_error" env:"TARGET_ERROR"`
	PTR              bool              `yaml:"ptr" env:"PTR"`
	DefaultActions   bool              `yaml:"default_actions" env:"DEFAULT_ACTIONS"`
	Executable       string            `yaml:"executable" env:"EXECUTABLE"`
	Iterations       string            `yaml:"iterations" env:"ITERATIONS"`
	CustomAPL        bool              `yaml:"custom_apl" env:"CUSTOM_APL"`
	CustomFightStyle bool              `yaml:"custom_fight_style" env:"CUSTOM_FIGHT_STYLE"`

	// ProfileSplitCharacter separates build name and tier label in job names.
	ProfileSplitCharacter string `yaml:"profile_split_character" env:"PROFILE_SPLIT_CHARACTER"`

	// TierSet is the set bonus name toggled by the tier directives, e.g. "tier29".
	TierSet string `yaml:"tier_set" env:"TIER_SET"`
}

func (s *RunSettings) UnmarshalYAML(value *yaml.Node) error {
	if err := rejectUnknownKeys(value, "settings",
		"fight_style", "target_error", "ptr", "default_actions", "executable", "iterations",
		"custom_apl", "custom_fight_style", "profile_split_character", "tier_set",
	); err != nil {
		return err
	}
	type raw RunSettings
	var tmp raw
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*s = RunSettings(tmp)
	return nil
}

// WithDefaults fills empty fields. It never mutates s.
func (s RunSettings) WithDefaults() RunSettings {
	if s.FightStyle == "" {
		s.FightStyle = DefaultFightStyle
	}
	if s.ProfileSplitCharacter == "" {
		s.ProfileSplitCharacter = DefaultProfileSplitCharacter
	}
	if s.TierSet == "" {
		s.TierSet = DefaultTierSet
	}
	return s
}

// TargetErrorFor returns the target error configured for the active fight style.
func (s RunSettings) TargetErrorFor(fightStyle string) string {
	if v, ok := s.TargetError[fightStyle]; ok {
		return v
	}
	return DefaultTargetError
}

func rejectUnknownKeys(value *yaml.Node, what string, allowed ...string) error {
	if value == nil || value.Kind != yaml.MappingNode {
		return nil
	}
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k := value.Content[i]
		if k.Kind != yaml.ScalarNode {
			continue
		}
		if _, ok := set[k.Value]; !ok {
			return fmt.Errorf("%s: unsupported key %q", what, k.Value)
		}
	}
	return nil
}

// JobDescriptor is one fully specified simulation task.
type JobDescriptor struct {
	Name           string           `json:"name"`
	Arguments      []string         `json:"simc_arguments"`
	FightStyle     string           `json:"fight_style"`
	Profile        CharacterProfile `json:"profile"`
	TargetError    string           `json:"target_error"`
	PTR            bool             `json:"ptr"`
	DefaultActions bool             `json:"default_actions"`
	Executable     string           `json:"executable"`
	Iterations     string           `json:"iterations"`
}

// JobBatch is the ordered output of one class/spec generation.
type JobBatch struct {
	jobs []JobDescriptor
}

func (b *JobBatch) Add(job JobDescriptor) {
	b.jobs = append(b.jobs, job)
}

func (b *JobBatch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.jobs)
}

// Jobs returns a copy of the descriptors in batch order.
func (b *JobBatch) Jobs() []JobDescriptor {
	if b == nil {
		return nil
	}
	out := make([]JobDescriptor, len(b.jobs))
	copy(out, b.jobs)
	return out
}
