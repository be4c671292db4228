package jobs

import (
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/tiers"
)

// clearTalents empties any talents inherited from the profile so that the
// build's own directives define the talents.
var clearTalents = []string{
	"talents=",
	"spec_talents=",
	"class_talents=",
}

// Build assembles the descriptor of one combination.
// Arguments are ordered tier toggles, talent clearing, build directives, so
// that under last-write-wins the build has the final say.
func Build(c tiers.Combination, profile domain.CharacterProfile, settings domain.RunSettings) domain.JobDescriptor {
	tierArgs := c.Level.Directives(settings.TierSet)
	args := make([]string, 0, len(tierArgs)+len(clearTalents)+len(c.Directives))
	args = append(args, tierArgs...)
	args = append(args, clearTalents...)
	args = append(args, c.Directives...)

	return domain.JobDescriptor{
		Name:           JobName(c.Build, c.Level, settings.ProfileSplitCharacter),
		Arguments:      args,
		FightStyle:     settings.FightStyle,
		Profile:        profile,
		TargetError:    settings.TargetErrorFor(settings.FightStyle),
		PTR:            settings.PTR,
		DefaultActions: settings.DefaultActions,
		Executable:     settings.Executable,
		Iterations:     settings.Iterations,
	}
}

// JobName mirrors the naming used by Build.
func JobName(build string, level tiers.Level, separator string) string {
	return build + separator + level.Label()
}
