package jobs_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/jobs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func twoBuilds() *domain.BuildOverrides {
	o := domain.NewBuildOverrides()
	o.Set("a", []string{"x=1"})
	o.Set("b", []string{"y=2"})
	return o
}

func TestGenerate_NamesAndOrder(t *testing.T) {
	base := domain.CharacterProfile{Raw: map[string]any{"character": map[string]any{"class": "mage"}}}

	batch, err := jobs.Generate(context.Background(), jobs.Input{
		Profile:   base,
		Overrides: twoBuilds(),
		Settings:  testSettings(),
	})
	require.NoError(t, err)

	var names []string
	for _, j := range batch.Jobs() {
		names = append(names, j.Name)
	}
	want := []string{"a|no-tier", "b|no-tier", "a|2p", "b|2p", "a|4p", "b|4p"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ProfileOnFirstJobOnly(t *testing.T) {
	base := domain.CharacterProfile{Raw: map[string]any{"character": map[string]any{"class": "mage", "talents": "T1"}}}

	batch, err := jobs.Generate(context.Background(), jobs.Input{
		Profile:   base,
		Overrides: twoBuilds(),
		Settings:  testSettings(),
	})
	require.NoError(t, err)

	for i, j := range batch.Jobs() {
		if i == 0 {
			if diff := cmp.Diff(base, j.Profile); diff != "" {
				t.Fatalf("job 0 profile mismatch (-want +got):\n%s", diff)
			}
			continue
		}
		if !j.Profile.IsEmpty() {
			t.Fatalf("job %d: expected empty profile, got %#v", i, j.Profile)
		}
	}
}

func TestGenerate_EveryJobClearsTalentsBeforeBuild(t *testing.T) {
	batch, err := jobs.Generate(context.Background(), jobs.Input{
		Overrides: twoBuilds(),
		Settings:  testSettings(),
	})
	require.NoError(t, err)

	cleared := []string{"talents=", "spec_talents=", "class_talents="}
	for _, j := range batch.Jobs() {
		require.Len(t, j.Arguments, 6, j.Name)
		if diff := cmp.Diff(cleared, j.Arguments[2:5]); diff != "" {
			t.Fatalf("%s: clearing directives mismatch (-want +got):\n%s", j.Name, diff)
		}
	}
}

func TestGenerate_AuxiliaryTextOnFirstJobOnly(t *testing.T) {
	s := testSettings()
	s.CustomAPL = true

	batch, err := jobs.Generate(context.Background(), jobs.Input{
		Overrides: twoBuilds(),
		Settings:  s,
		Aux:       fstest.MapFS{jobs.CustomAPLFile: {Data: []byte("actions=fireball")}},
	})
	require.NoError(t, err)

	all := batch.Jobs()
	first := all[0].Arguments
	if diff := cmp.Diff([]string{"x=1", "# custom_apl", "actions=fireball"}, first[len(first)-3:]); diff != "" {
		t.Fatalf("job 0 tail mismatch (-want +got):\n%s", diff)
	}
	for _, j := range all[1:] {
		require.Len(t, j.Arguments, 6, j.Name)
	}
}

func TestGenerate_AuxiliaryMissingAborts(t *testing.T) {
	s := testSettings()
	s.CustomFightStyle = true

	batch, err := jobs.Generate(context.Background(), jobs.Input{
		Overrides: twoBuilds(),
		Settings:  s,
		Aux:       fstest.MapFS{},
	})
	require.ErrorIs(t, err, domain.ErrAuxiliaryResourceMissing)
	require.Nil(t, batch)
}

func TestGenerate_Deterministic(t *testing.T) {
	in := jobs.Input{
		Profile:   domain.CharacterProfile{Raw: map[string]any{"character": map[string]any{"class": "mage"}}},
		Overrides: twoBuilds(),
		Settings:  testSettings(),
	}
	first, err := jobs.Generate(context.Background(), in)
	require.NoError(t, err)
	second, err := jobs.Generate(context.Background(), in)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Jobs(), second.Jobs()); diff != "" {
		t.Fatalf("batches differ between runs (-first +second):\n%s", diff)
	}
}

func TestGenerate_EmptyOverrides(t *testing.T) {
	batch, err := jobs.Generate(context.Background(), jobs.Input{Settings: testSettings()})
	require.NoError(t, err)
	require.Equal(t, 0, batch.Len())
}
