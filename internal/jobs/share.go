package jobs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
)

const (
	CustomAPLFile        = "custom_apl.txt"
	CustomFightStyleFile = "custom_fight_style.txt"

	customAPLMarker        = "# custom_apl"
	customFightStyleMarker = "# custom_fight_style"
)

// SharingPolicy decides what the job at a given batch index carries beyond
// its own directives. The simulator inherits profile and custom text from the
// previous job, so both are attached to the first job only.
type SharingPolicy struct {
	Settings domain.RunSettings
	// Aux is where CustomAPLFile and CustomFightStyleFile are read from.
	Aux fs.FS
}

// Profile returns a copy of base for index 0 and an empty profile otherwise.
func (p SharingPolicy) Profile(index int, base domain.CharacterProfile) domain.CharacterProfile {
	if index == 0 {
		return base.Clone()
	}
	return domain.CharacterProfile{}
}

// Augment appends the enabled custom texts to the arguments of job 0.
// Other indices are returned unchanged.
func (p SharingPolicy) Augment(index int, args []string) ([]string, error) {
	if index != 0 {
		return args, nil
	}
	if p.Settings.CustomAPL {
		text, err := p.read(CustomAPLFile)
		if err != nil {
			return nil, err
		}
		if text != "" {
			args = append(args, customAPLMarker, text)
		}
	}
	if p.Settings.CustomFightStyle {
		text, err := p.read(CustomFightStyleFile)
		if err != nil {
			return nil, err
		}
		if text != "" {
			args = append(args, customFightStyleMarker, text)
		}
	}
	return args, nil
}

func (p SharingPolicy) read(name string) (string, error) {
	if p.Aux == nil {
		return "", fmt.Errorf("%w: %s: no auxiliary directory configured", domain.ErrAuxiliaryResourceMissing, name)
	}
	f, err := p.Aux.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", domain.ErrAuxiliaryResourceMissing, name, err)
		}
		return "", fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(b), nil
}
