package engine

import (
	"sort"

	"github.com/hammamikhairi/cateringcalc/internal/calculator"
	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/format"
)

// Line is one ingredient of a sheet, ready for display.
type Line struct {
	Ingredient string
	Quantity   domain.Quantity
	Display    string
}

// Sheet lists the ingredients for one dish, item or order total, sorted by
// ingredient name.
type Sheet struct {
	Title    string
	Servings float64
	Lines    []Line
}

// OrderSheet is an order's per-item sheets plus the combined total.
type OrderSheet struct {
	Order *domain.Order
	Items []*Sheet
	Total *Sheet
}

// RecipeLine is one scaled recipe ingredient, ready for display.
type RecipeLine struct {
	Ingredient      string
	Unit            domain.Unit
	Original        float64
	Scaled          float64
	OriginalDisplay string
	ScaledDisplay   string
}

// RecipeSheet is a recipe scaled to a number of servings. Lines keep the
// recipe's order.
type RecipeSheet struct {
	Recipe        *domain.Recipe
	Servings      float64
	ScalingFactor float64
	Lines         []RecipeLine
}

func newSheet(title string, servings float64, quantities map[string]domain.Quantity) *Sheet {
	s := &Sheet{Title: title, Servings: servings, Lines: make([]Line, 0, len(quantities))}
	for name, q := range quantities {
		s.Lines = append(s.Lines, Line{Ingredient: name, Quantity: q, Display: format.Amount(q)})
	}
	sort.Slice(s.Lines, func(i, j int) bool { return s.Lines[i].Ingredient < s.Lines[j].Ingredient })
	return s
}

func newRecipeSheet(rc *calculator.RecipeCalculation) *RecipeSheet {
	s := &RecipeSheet{
		Recipe:        rc.Recipe,
		Servings:      rc.Servings,
		ScalingFactor: rc.ScalingFactor,
		Lines:         make([]RecipeLine, len(rc.Ingredients)),
	}
	for i, ing := range rc.Ingredients {
		s.Lines[i] = RecipeLine{
			Ingredient:      ing.Name,
			Unit:            ing.Unit,
			Original:        ing.OriginalQuantity,
			Scaled:          ing.ScaledQuantity,
			OriginalDisplay: format.Quantity(ing.OriginalQuantity, string(ing.Unit)),
			ScaledDisplay:   format.Quantity(ing.ScaledQuantity, string(ing.Unit)),
		}
	}
	return s
}

// Find returns the line for ingredient.
func (s *Sheet) Find(ingredient string) (Line, bool) {
	for _, l := range s.Lines {
		if l.Ingredient == ingredient {
			return l, true
		}
	}
	return Line{}, false
}
