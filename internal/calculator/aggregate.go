package calculator

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
)

// ItemQuantities is the ingredient list of a single order item.
type ItemQuantities struct {
	Item        domain.LineItem
	Ingredients map[string]domain.Quantity
}

// Breakdown computes the ingredients of each item separately, in item order.
func (c *Calculator) Breakdown(items []domain.LineItem) ([]ItemQuantities, error) {
	out := make([]ItemQuantities, 0, len(items))
	for i, it := range items {
		q, err := c.All(it.DishType, it.Servings)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i+1, it.DishType, err)
		}
		out = append(out, ItemQuantities{Item: it, Ingredients: q})
	}
	return out, nil
}

// Aggregate totals every ingredient across items. Items may come in any
// order; the result is the same.
func (c *Calculator) Aggregate(items []domain.LineItem) (map[string]domain.Quantity, error) {
	parts, err := c.Breakdown(items)
	if err != nil {
		return nil, err
	}
	maps := make([]map[string]domain.Quantity, len(parts))
	for i := range parts {
		maps[i] = parts[i].Ingredients
	}
	return Merge(maps...)
}

type total struct {
	sum  decimal.Decimal
	unit domain.Unit
}

// Merge sums quantities that share an ingredient name. Sums are exact
// decimals and are only converted back to float64 once at the end. Two
// different units for one name fail with domain.ErrUnitMismatch.
func Merge(parts ...map[string]domain.Quantity) (map[string]domain.Quantity, error) {
	totals := make(map[string]*total)
	for _, part := range parts {
		// Sorted so a mismatch error names the same ingredient on every run.
		names := make([]string, 0, len(part))
		for name := range part {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			q := part[name]
			t, ok := totals[name]
			if !ok {
				totals[name] = &total{sum: decimal.NewFromFloat(q.Amount), unit: q.Unit}
				continue
			}
			if t.unit != q.Unit {
				return nil, fmt.Errorf("%w: %q measured in both %s and %s", domain.ErrUnitMismatch, name, t.unit, q.Unit)
			}
			t.sum = t.sum.Add(decimal.NewFromFloat(q.Amount))
		}
	}

	out := make(map[string]domain.Quantity, len(totals))
	for name, t := range totals {
		f, _ := t.sum.Float64()
		out[name] = domain.Quantity{Amount: f, Unit: t.unit}
	}
	return out, nil
}
