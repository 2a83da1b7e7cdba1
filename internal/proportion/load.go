package proportion

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
)

// File is the YAML layout of a proportion table:
//
//	dishes:
//	  Valenciana:
//	    rice: {amount: 0.5, servings: 6, unit: kg}
//	    olive oil: {amount: 0.1, servings: 6, unit: l, precision: 3}
type File struct {
	Dishes map[string]map[string]RuleSpec `yaml:"dishes"`
}

// RuleSpec is one authored "amount for servings" fact.
type RuleSpec struct {
	Amount    float64     `yaml:"amount"`
	Servings  int         `yaml:"servings"`
	Unit      domain.Unit `yaml:"unit"`
	Precision *int        `yaml:"precision,omitempty"`
}

// Load reads a proportion table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading proportion file: %w", err)
	}
	return Parse(data)
}

// Parse builds a table from YAML bytes. Unknown keys are rejected so a typo
// in a field name cannot silently drop a rule's precision.
func Parse(data []byte) (*Table, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing proportion YAML: %w", err)
	}
	if len(f.Dishes) == 0 {
		return nil, fmt.Errorf("%w: no dish types defined", domain.ErrInvalidRule)
	}

	dishes := make(map[string]Rules, len(f.Dishes))
	for dish, specs := range f.Dishes {
		rules := make(Rules, len(specs))
		for name, spec := range specs {
			if spec.Servings <= 0 {
				return nil, fmt.Errorf("%w: %s/%s: servings must be positive, got %d",
					domain.ErrInvalidRule, dish, name, spec.Servings)
			}
			rule := Per(spec.Amount, spec.Servings, spec.Unit)
			if spec.Precision != nil {
				rule = WithPrecision(rule, *spec.Precision)
			}
			rules[name] = rule
		}
		dishes[dish] = rules
	}
	return NewTable(dishes)
}
