// Package proportion holds the per-dish-type ingredient proportion table.
//
// A Table is authored data: adding a dish type means adding entries, never
// code. Tables are immutable once built and safe for concurrent reads.
package proportion

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/validation"
)

// Rules maps ingredient names to their rule within one dish type.
type Rules map[string]domain.ProportionRule

// Table maps dish types to their ingredient rules.
type Table struct {
	dishes      map[string]Rules
	names       []string
	ingredients map[string][]string
}

// NewTable copies and validates dishes. Every rule must be well formed and
// an ingredient name must carry the same unit in every dish type, otherwise
// totals across dish types would add incompatible amounts.
func NewTable(dishes map[string]Rules) (*Table, error) {
	t := &Table{
		dishes:      make(map[string]Rules, len(dishes)),
		ingredients: make(map[string][]string, len(dishes)),
	}
	units := make(map[string]domain.Unit)
	owner := make(map[string]string)

	for _, dish := range sortedKeys(dishes) {
		if strings.TrimSpace(dish) == "" {
			return nil, fmt.Errorf("%w: empty dish type", domain.ErrInvalidRule)
		}
		rules := dishes[dish]
		copied := make(Rules, len(rules))
		for _, name := range sortedKeys(rules) {
			rule := rules[name]
			if strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("%w: %s: empty ingredient name", domain.ErrInvalidRule, dish)
			}
			if math.IsInf(rule.Ratio, 0) {
				return nil, fmt.Errorf("%w: %s/%s: infinite ratio", domain.ErrInvalidRule, dish, name)
			}
			if err := validation.Struct(rule, domain.ErrInvalidRule); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", dish, name, err)
			}
			if u, ok := units[name]; ok && u != rule.Unit {
				return nil, fmt.Errorf("%w: %q is %s in %s but %s in %s",
					domain.ErrUnitMismatch, name, u, owner[name], rule.Unit, dish)
			}
			units[name] = rule.Unit
			owner[name] = dish
			copied[name] = rule
		}
		t.dishes[dish] = copied
		t.names = append(t.names, dish)
		t.ingredients[dish] = sortedKeys(copied)
	}
	return t, nil
}

// MustTable is NewTable for authored literals; it panics on invalid data.
func MustTable(dishes map[string]Rules) *Table {
	t, err := NewTable(dishes)
	if err != nil {
		panic(err)
	}
	return t
}

// Rule returns the rule for ingredient in dish.
func (t *Table) Rule(dish, ingredient string) (domain.ProportionRule, bool) {
	rules, ok := t.dishes[dish]
	if !ok {
		return domain.ProportionRule{}, false
	}
	r, ok := rules[ingredient]
	return r, ok
}

// HasDish reports whether dish is a known dish type.
func (t *Table) HasDish(dish string) bool {
	_, ok := t.dishes[dish]
	return ok
}

// DishTypes returns the known dish types in sorted order.
func (t *Table) DishTypes() []string {
	return append([]string(nil), t.names...)
}

// Ingredients returns the ingredient names of dish in sorted order, or nil
// for an unknown dish.
func (t *Table) Ingredients(dish string) []string {
	names, ok := t.ingredients[dish]
	if !ok {
		return nil
	}
	return append([]string(nil), names...)
}

// Resolve finds the dish type matching name case-insensitively.
func (t *Table) Resolve(name string) (string, bool) {
	if t.HasDish(name) {
		return name, true
	}
	trimmed := strings.TrimSpace(name)
	for _, dish := range t.names {
		if strings.EqualFold(dish, trimmed) {
			return dish, true
		}
	}
	return "", false
}

// String lists every rule as its per-serving ratio, one per line.
func (t *Table) String() string {
	var b strings.Builder
	for _, dish := range t.names {
		for _, name := range t.ingredients[dish] {
			b.WriteString(describe(dish, name, t.dishes[dish][name]))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
