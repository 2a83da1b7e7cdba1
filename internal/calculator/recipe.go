package calculator

import (
	"fmt"
	"math"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/validation"
)

// ScaledIngredient is one recipe ingredient before and after scaling.
type ScaledIngredient struct {
	Name             string
	Unit             domain.Unit
	OriginalQuantity float64
	ScaledQuantity   float64
}

// RecipeCalculation is a recipe scaled to a number of servings.
type RecipeCalculation struct {
	Recipe        *domain.Recipe
	Servings      float64
	ScalingFactor float64
	Ingredients   []ScaledIngredient
}

// ScaleRecipe scales every ingredient of recipe by targetServings divided
// by the recipe's base servings. Quantities are not rounded; rounding is
// left to display. Ingredients keep the recipe's order.
func ScaleRecipe(recipe *domain.Recipe, targetServings float64) (*RecipeCalculation, error) {
	if recipe == nil {
		return nil, fmt.Errorf("%w: nil recipe", domain.ErrInvalidRecipe)
	}
	if recipe.BaseServings <= 0 {
		return nil, fmt.Errorf("%w: %q has base servings %d", domain.ErrInvalidRecipe, recipe.Name, recipe.BaseServings)
	}
	if math.IsNaN(targetServings) || math.IsInf(targetServings, 0) || targetServings <= 0 {
		return nil, fmt.Errorf("%w: target servings %v", domain.ErrInvalidRecipe, targetServings)
	}
	if err := validation.Struct(recipe, domain.ErrInvalidRecipe); err != nil {
		return nil, err
	}

	factor := targetServings / float64(recipe.BaseServings)
	out := make([]ScaledIngredient, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		out[i] = ScaledIngredient{
			Name:             ing.Name,
			Unit:             ing.Unit,
			OriginalQuantity: ing.Quantity,
			ScaledQuantity:   ing.Quantity * factor,
		}
	}

	return &RecipeCalculation{
		Recipe:        recipe,
		Servings:      targetServings,
		ScalingFactor: factor,
		Ingredients:   out,
	}, nil
}
