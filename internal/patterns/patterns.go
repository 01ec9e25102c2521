// Package patterns registers the built-in pattern library with the core
// registry. Import it for its side effects.
package patterns

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"lifebox/internal/core"
	"lifebox/pkg/life"
)

//go:embed patterns.yaml
var libraryYAML []byte

type entry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Rows        []string `yaml:"rows"`
}

// Parse decodes a YAML pattern list. Rows use 'O' or '*' for live cells and
// '.' or ' ' for dead ones.
func Parse(data []byte) ([]core.Pattern, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse patterns: %w", err)
	}
	out := make([]core.Pattern, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("pattern without a name")
		}
		p := core.Pattern{Name: e.Name, Description: e.Description}
		for y, row := range e.Rows {
			for x, ch := range row {
				switch ch {
				case 'O', '*':
					p.Cells = append(p.Cells, life.Cell{X: x, Y: y})
				case '.', ' ':
				default:
					return nil, fmt.Errorf("pattern %s: unexpected %q at row %d", e.Name, ch, y)
				}
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func init() {
	list, err := Parse(libraryYAML)
	if err != nil {
		panic(err)
	}
	for _, p := range list {
		core.Register(p)
	}
}
