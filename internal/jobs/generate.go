package jobs

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/ctxlog"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/tiers"
)

// Input is everything one batch generation needs. Overrides must already
// contain the custom profile build, if any.
type Input struct {
	Profile   domain.CharacterProfile
	Overrides *domain.BuildOverrides
	Settings  domain.RunSettings
	Aux       fs.FS
}

// Generate expands every tier level against every build and returns the
// jobs in tier-major, build-minor order. On error no batch is returned.
func Generate(ctx context.Context, in Input) (*domain.JobBatch, error) {
	settings := in.Settings.WithDefaults()
	policy := SharingPolicy{Settings: settings, Aux: in.Aux}

	combos := tiers.Expand(in.Overrides, tiers.Levels())
	batch := &domain.JobBatch{}
	for _, c := range combos {
		index := batch.Len()
		job := Build(c, policy.Profile(index, in.Profile), settings)
		args, err := policy.Augment(index, job.Arguments)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", job.Name, err)
		}
		job.Arguments = args
		batch.Add(job)
	}

	ctxlog.FromContext(ctx).Debug("generated tier set batch",
		"builds", in.Overrides.Len(),
		"jobs", batch.Len(),
	)
	return batch, nil
}
