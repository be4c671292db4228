package builds

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"

	"gopkg.in/yaml.v3"
)

// Definitions holds the talent tree path files shipped with the tool.
//
//go:embed talent_tree_paths/*.yaml
var Definitions embed.FS

// DefinitionKey returns the path of the definitions file for a class/spec pair.
func DefinitionKey(className, specName string) string {
	name := fmt.Sprintf("%s_%s.yaml", canonical(className), canonical(specName))
	return path.Join("talent_tree_paths", name)
}

func canonical(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

// Load reads the predefined builds of a class/spec from fsys.
//
// A file that is missing yields domain.ErrDefinitionNotFound. A file holding
// only null (or nothing) yields an empty map.
func Load(fsys fs.FS, className, specName string) (*domain.BuildOverrides, error) {
	key := DefinitionKey(className, specName)
	f, err := fsys.Open(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrDefinitionNotFound, key, err)
		}
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	defer f.Close()

	var doc yaml.Node
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewBuildOverrides(), nil
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMalformedDefinitions, key, err)
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return domain.NewBuildOverrides(), nil
		}
		root = doc.Content[0]
	}
	out := domain.NewBuildOverrides()
	if err := out.UnmarshalYAML(root); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMalformedDefinitions, key, err)
	}
	return out, nil
}
