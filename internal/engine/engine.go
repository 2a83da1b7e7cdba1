// Package engine runs the quantity pipeline: scale, aggregate, format. It
// depends only on interfaces for recipes and orders and is fully testable
// with the in-memory adapters.
package engine

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/cateringcalc/internal/calculator"
	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/format"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/proportion"
)

// Engine builds display-ready ingredient sheets.
type Engine struct {
	calc    *calculator.Calculator
	recipes domain.RecipeSource
	orders  domain.OrderStore
	log     *logger.Logger
}

// New creates an engine with the given dependencies.
func New(calc *calculator.Calculator, recipes domain.RecipeSource, orders domain.OrderStore, log *logger.Logger) *Engine {
	return &Engine{
		calc:    calc,
		recipes: recipes,
		orders:  orders,
		log:     log,
	}
}

// DishTypes returns the dish types of the proportion table.
func (e *Engine) DishTypes() []string {
	return e.calc.Table().DishTypes()
}

// ReferenceSheets lists every dish type with the amounts its rules were
// authored for, e.g. "500g for 6".
func (e *Engine) ReferenceSheets() []*Sheet {
	table := e.calc.Table()
	dishes := table.DishTypes()
	out := make([]*Sheet, 0, len(dishes))
	for _, dish := range dishes {
		names := table.Ingredients(dish)
		s := &Sheet{Title: dish, Lines: make([]Line, 0, len(names))}
		for _, name := range names {
			rule, _ := table.Rule(dish, name)
			q := domain.Quantity{
				Amount: calculator.Round(proportion.ReferenceAmount(rule), rule.Precision),
				Unit:   rule.Unit,
			}
			s.Lines = append(s.Lines, Line{
				Ingredient: name,
				Quantity:   q,
				Display:    fmt.Sprintf("%s for %d", format.Amount(q), rule.ReferenceServings),
			})
		}
		out = append(out, s)
	}
	return out
}

// ListRecipes returns all available recipes.
func (e *Engine) ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error) {
	return e.recipes.List(ctx)
}

// SearchRecipes returns recipes matching query.
func (e *Engine) SearchRecipes(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	return e.recipes.Search(ctx, query)
}

// GetRecipe returns a full recipe by ID.
func (e *Engine) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return e.recipes.Get(ctx, id)
}

// ListOrders returns every stored order.
func (e *Engine) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return e.orders.List(ctx)
}

// DishSheet computes the ingredients for servings of one dish type.
func (e *Engine) DishSheet(dish string, servings float64) (*Sheet, error) {
	q, err := e.calc.All(dish, servings)
	if err != nil {
		return nil, err
	}
	return newSheet(itemTitle(dish, servings), servings, q), nil
}

// ItemsSheet computes per-item sheets and the combined total for items.
func (e *Engine) ItemsSheet(items []domain.LineItem) (*OrderSheet, error) {
	return e.orderSheet(&domain.Order{Items: items})
}

// OrderSheet loads a stored order and computes its sheets.
func (e *Engine) OrderSheet(ctx context.Context, id string) (*OrderSheet, error) {
	o, err := e.orders.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading order %s: %w", id, err)
	}
	return e.orderSheet(o)
}

func (e *Engine) orderSheet(o *domain.Order) (*OrderSheet, error) {
	parts, err := e.calc.Breakdown(o.Items)
	if err != nil {
		return nil, err
	}

	out := &OrderSheet{Order: o, Items: make([]*Sheet, len(parts))}
	maps := make([]map[string]domain.Quantity, len(parts))
	for i, p := range parts {
		out.Items[i] = newSheet(itemTitle(p.Item.DishType, p.Item.Servings), p.Item.Servings, p.Ingredients)
		maps[i] = p.Ingredients
	}

	totals, err := calculator.Merge(maps...)
	if err != nil {
		return nil, err
	}
	out.Total = newSheet("Total", o.TotalServings(), totals)
	e.log.Debug("order %s: %d items, %d ingredients", o.ID, len(o.Items), len(totals))
	return out, nil
}

// RecipeSheet scales a catalog recipe to servings.
func (e *Engine) RecipeSheet(ctx context.Context, id string, servings float64) (*RecipeSheet, error) {
	r, err := e.recipes.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting recipe %s: %w", id, err)
	}
	return e.ScaleRecipe(r, servings)
}

// BaseRecipeSheet shows a catalog recipe at its own base servings.
func (e *Engine) BaseRecipeSheet(ctx context.Context, id string) (*RecipeSheet, error) {
	r, err := e.recipes.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting recipe %s: %w", id, err)
	}
	return e.ScaleRecipe(r, float64(r.BaseServings))
}

// ScaleRecipe scales r to servings and formats every ingredient.
func (e *Engine) ScaleRecipe(r *domain.Recipe, servings float64) (*RecipeSheet, error) {
	rc, err := calculator.ScaleRecipe(r, servings)
	if err != nil {
		return nil, err
	}
	e.log.Debug("scaled %s to %g servings (factor %.4g)", r.Name, servings, rc.ScalingFactor)
	return newRecipeSheet(rc), nil
}

func itemTitle(dish string, servings float64) string {
	return fmt.Sprintf("%s x%g", dish, servings)
}
