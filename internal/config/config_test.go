package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/config"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := cfg.Settings
	if s.ProfileSplitCharacter != domain.DefaultProfileSplitCharacter || s.TierSet != domain.DefaultTierSet {
		t.Fatalf("expected defaults, got %#v", s)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "tier_set_config.yaml", ""+
		"settings:\n"+
		"  iterations: \"1000\"\n"+
		"  executable: /opt/simc\n")
	t.Setenv("TIER_SET_ITERATIONS", "25000")
	t.Setenv("TIER_SET_TARGET_ERROR", "patchwerk:0.05,dungeonslice:0.2")
	t.Setenv("TIER_SET_CUSTOM_APL", "true")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := cfg.Settings
	if s.Iterations != "25000" {
		t.Fatalf("expected env iterations, got %q", s.Iterations)
	}
	if s.Executable != "/opt/simc" {
		t.Fatalf("expected file executable to be kept, got %q", s.Executable)
	}
	if !s.CustomAPL {
		t.Fatalf("expected custom_apl from env")
	}
	if diff := cmp.Diff(map[string]string{"patchwerk": "0.05", "dungeonslice": "0.2"}, s.TargetError); diff != "" {
		t.Fatalf("target_error mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing settings file")
	}
}

func TestLoadProfile(t *testing.T) {
	path := writeFile(t, "profile.yaml", ""+
		"character:\n"+
		"  class: mage\n"+
		"  spec: fire\n"+
		"  class_talents: A\n"+
		"  spec_talents: B\n")

	p, err := config.LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Talents(); got != (domain.SplitTalents{Class: "A", Spec: "B"}) {
		t.Fatalf("unexpected talents %#v", got)
	}
}

func TestLoadProfile_KeepsOtherSections(t *testing.T) {
	path := writeFile(t, "profile.yaml", ""+
		"character:\n"+
		"  class: mage\n"+
		"  talents: T1\n"+
		"  metadata:\n"+
		"    region: eu\n"+
		"items:\n"+
		"  head:\n"+
		"    item_id: 200318\n")

	p, err := config.LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"head": map[string]any{"item_id": 200318}}, p.Raw["items"]); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"region": "eu"}, p.Character()["metadata"]); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProfile_RejectsEmptyCharacter(t *testing.T) {
	for name, content := range map[string]string{
		"empty block": "character: {}\n",
		"no block":    "items:\n  head:\n    item_id: 1\n",
	} {
		path := writeFile(t, "profile.yaml", content)
		if _, err := config.LoadProfile(path); err == nil {
			t.Fatalf("%s: expected error for missing character block", name)
		}
	}
}

func TestLoadResults(t *testing.T) {
	path := writeFile(t, "results.yaml", ""+
		"\"a+no-tier\": 1000.5\n"+
		"\"a+2p\": 1100\n")

	got, err := config.LoadResults(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]float64{"a+no-tier": 1000.5, "a+2p": 1100}, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}
