package builds_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/builds"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefinitionKey(t *testing.T) {
	if got := builds.DefinitionKey("Death Knight", "frost"); got != "talent_tree_paths/death_knight_frost.yaml" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestLoad_KeepsFileOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"talent_tree_paths/mage_frost.yaml": {Data: []byte("" +
			"b:\n" +
			"  - y=2\n" +
			"a:\n" +
			"  - x=1\n")},
	}

	got, err := builds.Load(fsys, "mage", "frost")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"b", "a"}, got.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := builds.Load(fstest.MapFS{}, "mage", "frost")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrDefinitionNotFound)
}

func TestLoad_NullAndEmptyAreEmptyMaps(t *testing.T) {
	fsys := fstest.MapFS{
		"talent_tree_paths/mage_frost.yaml":  {Data: []byte("~\n")},
		"talent_tree_paths/mage_arcane.yaml": {Data: []byte("")},
		"talent_tree_paths/mage_fire.yaml":   {Data: []byte("null\n")},
		"talent_tree_paths/mage_mist.yaml":   {Data: []byte("# nothing yet\n")},
	}
	for _, spec := range []string{"frost", "arcane", "fire", "mist"} {
		got, err := builds.Load(fsys, "mage", spec)
		require.NoError(t, err, spec)
		require.Equal(t, 0, got.Len(), spec)
	}
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"syntax":       "a: [x=1\n",
		"scalar":       "just a string\n",
		"duplicate":    "a:\n  - x=1\na:\n  - x=2\n",
		"nested":       "a:\n  - {x: 1}\n",
		"null build":   "a:\nb:\n  - y=2\n",
		"scalar build": "a: x=1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{"talent_tree_paths/mage_frost.yaml": {Data: []byte(content)}}
			_, err := builds.Load(fsys, "mage", "frost")
			require.ErrorIs(t, err, domain.ErrMalformedDefinitions)
			if errors.Is(err, domain.ErrDefinitionNotFound) {
				t.Fatalf("malformed content must not be reported as missing")
			}
		})
	}
}

func TestLoad_BundledDefinitions(t *testing.T) {
	fire, err := builds.Load(builds.Definitions, "mage", "fire")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"sunfury_firefall", "flame_patch_aoe"}, fire.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	aug, err := builds.Load(builds.Definitions, "evoker", "augmentation")
	require.NoError(t, err)
	require.Equal(t, 0, aug.Len())
}
