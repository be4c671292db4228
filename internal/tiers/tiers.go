package tiers

import (
	"fmt"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
)

// Level is an equipped set bonus tier.
type Level int

const (
	NoTier Level = iota
	TwoPiece
	FourPiece
)

// Levels returns every tier in declaration order.
func Levels() []Level {
	return []Level{NoTier, TwoPiece, FourPiece}
}

// Label is the tier part of a job name.
func (l Level) Label() string {
	switch l {
	case NoTier:
		return "no-tier"
	case TwoPiece:
		return "2p"
	case FourPiece:
		return "4p"
	default:
		return fmt.Sprintf("tier(%d)", int(l))
	}
}

func (l Level) String() string { return l.Label() }

// Directives returns the 2pc and 4pc toggles for set, in that order.
func (l Level) Directives(set string) []string {
	two, four := 0, 0
	switch l {
	case TwoPiece:
		two = 1
	case FourPiece:
		two, four = 1, 1
	}
	return []string{
		fmt.Sprintf("set_bonus=%s_2pc=%d", set, two),
		fmt.Sprintf("set_bonus=%s_4pc=%d", set, four),
	}
}

// Combination is one (tier, build) pair of the job matrix.
type Combination struct {
	Level      Level
	Build      string
	Directives []string
}

// Expand crosses levels with overrides: tier-major, then builds in insertion order.
func Expand(overrides *domain.BuildOverrides, levels []Level) []Combination {
	out := make([]Combination, 0, len(levels)*overrides.Len())
	for _, level := range levels {
		for name, directives := range overrides.All() {
			out = append(out, Combination{Level: level, Build: name, Directives: directives})
		}
	}
	return out
}
