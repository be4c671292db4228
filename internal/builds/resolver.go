package builds

import "github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"

// CustomProfile is the build name given to the talents of the input profile.
const CustomProfile = "custom_profile"

// Apply adds the profile's own talents as the CustomProfile build.
// It must run before expansion so that build is simulated like any other.
func Apply(profile domain.CharacterProfile, overrides *domain.BuildOverrides) *domain.BuildOverrides {
	if overrides == nil {
		overrides = domain.NewBuildOverrides()
	}
	switch t := profile.Talents().(type) {
	case domain.CombinedTalents, domain.SplitTalents:
		overrides.Set(CustomProfile, t.Directives())
	}
	return overrides
}
