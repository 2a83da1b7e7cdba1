// Package calculator scales ingredient quantities.
//
// Calculator covers fixed-menu dish types backed by a proportion table and
// merges the quantities of several order items; ScaleRecipe covers
// arbitrary recipes. Everything here is pure and safe for concurrent use.
package calculator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/proportion"
)

// Calculator computes fixed-menu quantities from a proportion table.
type Calculator struct {
	table  *proportion.Table
	strict bool
	log    *logger.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithStrictDishTypes makes unknown dish types fail with
// domain.ErrUnknownDishType instead of yielding an empty result.
func WithStrictDishTypes(strict bool) Option {
	return func(c *Calculator) {
		c.strict = strict
	}
}

// New creates a calculator over table.
func New(table *proportion.Table, log *logger.Logger, opts ...Option) *Calculator {
	c := &Calculator{table: table, log: log}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the proportion table the calculator reads.
func (c *Calculator) Table() *proportion.Table {
	return c.table
}

// Amount computes one ingredient for servings of dish. The bool is false
// when the dish has no rule for the ingredient; that is not an error, the
// ingredient simply does not apply to the dish.
func (c *Calculator) Amount(dish, ingredient string, servings float64) (domain.Quantity, bool, error) {
	if err := checkServings(servings); err != nil {
		return domain.Quantity{}, false, err
	}
	if !c.table.HasDish(dish) {
		return domain.Quantity{}, false, c.unknownDish(dish)
	}

	rule, ok := c.table.Rule(dish, ingredient)
	if !ok {
		c.log.Debug("%s has no rule for %q", dish, ingredient)
		return domain.Quantity{}, false, nil
	}
	return scale(rule, servings), true, nil
}

// All computes every ingredient of dish for servings.
func (c *Calculator) All(dish string, servings float64) (map[string]domain.Quantity, error) {
	if err := checkServings(servings); err != nil {
		return nil, err
	}
	if !c.table.HasDish(dish) {
		if err := c.unknownDish(dish); err != nil {
			return nil, err
		}
		return map[string]domain.Quantity{}, nil
	}

	names := c.table.Ingredients(dish)
	out := make(map[string]domain.Quantity, len(names))
	for _, name := range names {
		rule, _ := c.table.Rule(dish, name)
		out[name] = scale(rule, servings)
	}
	c.log.Debug("computed %d ingredients for %s x%g", len(out), dish, servings)
	return out, nil
}

func (c *Calculator) unknownDish(dish string) error {
	if c.strict {
		return fmt.Errorf("%w: %q", domain.ErrUnknownDishType, dish)
	}
	c.log.Debug("unknown dish type %q, treating as empty", dish)
	return nil
}

// scale multiplies the per-serving ratio and rounds half away from zero to
// the rule's precision.
func scale(rule domain.ProportionRule, servings float64) domain.Quantity {
	return domain.Quantity{
		Amount: Round(rule.Ratio*servings, rule.Precision),
		Unit:   rule.Unit,
	}
}

// Round rounds v to places decimals, ties away from zero.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(int32(places)).Float64()
	return f
}

func checkServings(servings float64) error {
	if math.IsNaN(servings) || math.IsInf(servings, 0) || servings <= 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidServings, servings)
	}
	return nil
}
