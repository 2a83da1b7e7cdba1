package recipe

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
)

type catalogFile struct {
	Recipes []*domain.Recipe `yaml:"recipes"`
}

// LoadFile adds every recipe in a YAML catalog file to the source. Loading
// stops at the first invalid or duplicate recipe.
func (s *MemorySource) LoadFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading recipe file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return 0, fmt.Errorf("parsing recipe YAML: %w", err)
	}

	for i, r := range f.Recipes {
		if r == nil {
			return i, fmt.Errorf("%w: entry %d is empty", domain.ErrInvalidRecipe, i+1)
		}
		if err := s.Add(ctx, r); err != nil {
			return i, fmt.Errorf("recipe %q: %w", r.Name, err)
		}
	}
	s.log.Info("loaded %d recipes from %s", len(f.Recipes), path)
	return len(f.Recipes), nil
}
