package sim

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/builds"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/ctxlog"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/jobs"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/tiers"
)

// TierSet simulates every predefined build of a spec without tier, with the
// 2-piece and with the 4-piece set bonus.
type TierSet struct {
	Settings    domain.RunSettings
	Definitions fs.FS
	Aux         fs.FS
}

var _ Simulator = TierSet{}

func (TierSet) Name() string { return "Tier Set" }

// PreProcess loads the predefined builds and adds the profile's own talents
// as the custom_profile build.
func (t TierSet) PreProcess(ctx context.Context, d *Data) error {
	definitions := t.Definitions
	if definitions == nil {
		definitions = builds.Definitions
	}
	overrides, err := builds.Load(definitions, d.Class, d.Spec)
	if err != nil {
		return fmt.Errorf("%s %s: %w", d.Class, d.Spec, err)
	}
	loaded := overrides.Len()
	d.Overrides = builds.Apply(d.Profile, overrides)

	ctxlog.FromContext(ctx).Info("loaded talent tree paths",
		"class", d.Class,
		"spec", d.Spec,
		"predefined", loaded,
		"builds", d.Overrides.Len(),
	)
	return nil
}

func (t TierSet) AddSimulationData(ctx context.Context, d *Data) error {
	if d.Overrides == nil {
		return fmt.Errorf("%s %s: AddSimulationData called before PreProcess", d.Class, d.Spec)
	}
	batch, err := jobs.Generate(ctx, jobs.Input{
		Profile:   d.Profile,
		Overrides: d.Overrides,
		Settings:  t.Settings,
		Aux:       t.Aux,
	})
	if err != nil {
		return fmt.Errorf("%s %s: %w", d.Class, d.Spec, err)
	}
	d.Batch = batch
	return nil
}

// PostProcess arranges results by build and tier. Every result name must be
// a job of the batch.
func (t TierSet) PostProcess(ctx context.Context, d *Data, results map[string]float64) (Matrix, error) {
	if d.Overrides == nil {
		return Matrix{}, fmt.Errorf("%s %s: PostProcess called before PreProcess", d.Class, d.Spec)
	}
	sep := t.Settings.WithDefaults().ProfileSplitCharacter
	levels := tiers.Levels()

	m := Matrix{Columns: make([]string, 0, len(levels))}
	for _, l := range levels {
		m.Columns = append(m.Columns, l.Label())
	}

	seen := make(map[string]struct{}, len(results))
	for _, build := range d.Overrides.Names() {
		row := MatrixRow{Build: build, Values: make(map[string]float64, len(levels))}
		for _, l := range levels {
			name := jobs.JobName(build, l, sep)
			if v, ok := results[name]; ok {
				row.Values[l.Label()] = v
				seen[name] = struct{}{}
			}
		}
		m.Rows = append(m.Rows, row)
	}

	if len(seen) != len(results) {
		var unknown []string
		for name := range results {
			if _, ok := seen[name]; !ok {
				unknown = append(unknown, name)
			}
		}
		slices.Sort(unknown)
		return Matrix{}, fmt.Errorf("%s %s: results for unknown jobs: %s", d.Class, d.Spec, strings.Join(unknown, ", "))
	}

	ctxlog.FromContext(ctx).Debug("post-processed results", "results", len(results))
	return m, nil
}
