package storage

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
)

type ordersFile struct {
	Orders []*domain.Order `yaml:"orders"`
}

// LoadFile saves every order of a YAML orders file into the store.
func (s *MemoryStore) LoadFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading orders file: %w", err)
	}

	var f ordersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return 0, fmt.Errorf("parsing orders YAML: %w", err)
	}

	for i, o := range f.Orders {
		if o == nil {
			return i, fmt.Errorf("%w: entry %d is empty", domain.ErrInvalidOrder, i+1)
		}
		if err := s.Save(ctx, o); err != nil {
			return i, fmt.Errorf("order %d (%s): %w", i+1, o.CustomerName, err)
		}
	}
	s.log.Info("loaded %d orders from %s", len(f.Orders), path)
	return len(f.Orders), nil
}
