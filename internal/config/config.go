package config

import (
	"fmt"
	"os"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every settings environment variable, e.g. TIER_SET_ITERATIONS.
const EnvPrefix = "TIER_SET_"

// Load reads tier_set_config.yaml at path. An empty path yields the zero
// Config. Environment overrides and defaults are applied in both cases.
func Load(path string) (domain.Config, error) {
	var cfg domain.Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return domain.Config{}, fmt.Errorf("read tier_set_config.yaml (%s): %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse tier_set_config.yaml: %w", err)
		}
	}

	settings, err := ApplyEnv(cfg.Settings)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.Settings = settings.WithDefaults()
	return cfg, nil
}

// ApplyEnv overrides settings with the TIER_SET_* variables that are set.
func ApplyEnv(settings domain.RunSettings) (domain.RunSettings, error) {
	if err := env.ParseWithOptions(&settings, env.Options{Prefix: EnvPrefix}); err != nil {
		return domain.RunSettings{}, fmt.Errorf("parse env: %w", err)
	}
	return settings, nil
}

// LoadProfile reads a simc profile yaml. The whole document is kept; it must
// hold a non-empty `character:` block.
func LoadProfile(path string) (domain.CharacterProfile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.CharacterProfile{}, fmt.Errorf("read profile (%s): %w", path, err)
	}
	var p domain.CharacterProfile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return domain.CharacterProfile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if len(p.Character()) == 0 {
		return domain.CharacterProfile{}, fmt.Errorf("profile %s: character block is missing or empty", path)
	}
	return p, nil
}

// LoadResults reads a yaml mapping of job name to simulated value.
func LoadResults(path string) (map[string]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results (%s): %w", path, err)
	}
	out := make(map[string]float64)
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse results %s: %w", path, err)
	}
	return out, nil
}
